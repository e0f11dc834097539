package qrcode

import (
	"strings"

	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/Badsnus/qrage/internal/domain/utils/formatter"
	"github.com/Badsnus/qrage/internal/domain/utils/location"
	"github.com/Badsnus/qrage/pkg/platform"
	qr "github.com/Badsnus/qrage/pkg/qrcode"
)

func previewCaption(lt *layout.Layout, c tele.Context, req qr.ExportRequest, a *qr.Artifact) string {
	var platformName string
	if req.Platform != nil {
		platformName = req.Platform.Name
	}
	return lt.Text(c, "preview_caption", struct {
		Title    string
		Platform string
		Payload  string
		Level    qr.Level
		Notices  []string
	}{
		Title:    req.Style.Title,
		Platform: platformName,
		Payload:  truncate(req.Payload, 200),
		Level:    a.Level,
		Notices:  a.Notices,
	})
}

type historyLine struct {
	N       int
	ID      string
	Type    entity.ContentType
	Summary string
	Time    string
	Exports string
}

func historyLines(entries []entity.HistoryEntry) []historyLine {
	lines := make([]historyLine, 0, len(entries))
	for i, e := range entries {
		exports := "-"
		if len(e.Exports) > 0 {
			exports = strings.Join(e.Exports, ", ")
		}
		lines = append(lines, historyLine{
			N:       i + 1,
			ID:      e.ID,
			Type:    e.Type,
			Summary: truncate(entrySummary(e), 60),
			Time:    e.Timestamp.In(location.Location).Format("2006-01-02 15:04"),
			Exports: exports,
		})
	}
	return lines
}

// entrySummary shows the network name for Wi-Fi entries and the link otherwise.
func entrySummary(e entity.HistoryEntry) string {
	if e.Type != entity.ContentWiFi {
		return e.Payload
	}
	w, err := formatter.ParseWiFi(e.Payload)
	if err != nil {
		return e.Payload
	}
	if w.Hidden {
		return w.SSID + " (hidden)"
	}
	return w.SSID
}

func platformsText(lt *layout.Layout, c tele.Context) string {
	type row struct {
		Key     platform.Key
		Name    string
		BaseURL string
		Custom  bool
	}
	var rows []row
	for _, d := range platform.All() {
		rows = append(rows, row{Key: d.Key, Name: d.Name, BaseURL: d.BaseURL, Custom: d.Key == platform.Custom})
	}
	return lt.Text(c, "platforms", rows)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// platformMarkup lays the platform buttons out two per row.
func platformMarkup(lt *layout.Layout, c tele.Context) *tele.ReplyMarkup {
	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	var row tele.Row
	for _, d := range platform.All() {
		row = append(row, *lt.Button(c, "social:platform", d))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	markup.Inline(rows...)
	return markup
}

func historyMarkup(lt *layout.Layout, c tele.Context, lines []historyLine) *tele.ReplyMarkup {
	markup := c.Bot().NewMarkup()
	rows := make([]tele.Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, markup.Row(
			*lt.Button(c, "history:open", line),
			*lt.Button(c, "history:forget", line),
		))
	}
	markup.Inline(rows...)
	return markup
}
