package smtp

import (
	"fmt"
	"io"
	"time"

	qr "github.com/Badsnus/qrage/pkg/qrcode"
	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Client sends finished exports by e-mail.
type Client struct {
	dialer sender
	from   string
	domain string
}

// NewClient initializes Client. domain is used for Message-ID headers.
func NewClient(dialer sender, from, domain string) *Client {
	return &Client{dialer: dialer, from: from, domain: domain}
}

// SendArtifact mails a as an attachment.
func (c *Client) SendArtifact(to string, a *qr.Artifact) error {
	if err := c.dialer.DialAndSend(c.buildMessage(to, a)); err != nil {
		return fmt.Errorf("send %s to %s: %w", a.Filename, to, err)
	}
	return nil
}

func (c *Client) buildMessage(to string, a *qr.Artifact) *gomail.Message {
	msg := gomail.NewMessage()

	msg.SetHeader("Message-ID", generateMessageID(c.domain))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Your QR code: %s", a.Filename))
	msg.SetBody("text/plain", fmt.Sprintf("Your QR code is attached as %s.", a.Filename))

	data := a.Data
	msg.Attach(a.Filename,
		gomail.SetHeader(map[string][]string{"Content-Type": {a.MIME}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}),
	)
	return msg
}

func generateMessageID(domain string) string {
	uniqueID := uuid.New().String()
	return fmt.Sprintf("<%s@%s>", uniqueID, domain)
}
