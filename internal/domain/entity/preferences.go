package entity

// Preferences is the per-user style kept between sessions.
type Preferences struct {
	Title            string `json:"title,omitempty"`
	Foreground       string `json:"fg"`
	Background       string `json:"bg"`
	ErrorCorrection  string `json:"ec"`
	BackgroundFileID string `json:"bg_file_id,omitempty"`
}

// Session is the QR the user is currently composing.
type Session struct {
	EntryID  string      `json:"entry_id"`
	Type     ContentType `json:"type"`
	Payload  string      `json:"payload"`
	Platform string      `json:"platform,omitempty"`
}
