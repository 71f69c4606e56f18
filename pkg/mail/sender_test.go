package mail

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/mail.v2"
)

type stubDialer struct {
	SentMessage *mail.Message
	ShouldError bool
}

func (d *stubDialer) DialAndSend(m ...*mail.Message) error {
	if d.ShouldError {
		return errors.New("error")
	}
	if len(m) > 0 {
		d.SentMessage = m[0]
	}
	return nil
}

func TestSendMail(t *testing.T) {
	t.Run("sends an email successfully", func(t *testing.T) {
		dialer := &stubDialer{}
		s := &sender{
			email:  "monitoring@example.com",
			dialer: dialer,
		}

		to := []string{"ops@example.com"}
		subject := "App Fleet Health Report"
		htmlBody := "<h1>Fleet Report</h1>"
		textBody := "Fleet Report"
		attachmentContent := "incident export"
		attachments := []Attachment{
			{
				Name:    "incidents.txt",
				Content: strings.NewReader(attachmentContent),
			},
		}
		err := s.SendMail(to, subject, htmlBody, textBody, attachments)
		assert.NoError(t, err)
		assert.NotNil(t, dialer.SentMessage)
		assert.Equal(t, s.email, dialer.SentMessage.GetHeader("From")[0])
		assert.Equal(t, to[0], dialer.SentMessage.GetHeader("To")[0])
		assert.Equal(t, subject, dialer.SentMessage.GetHeader("Subject")[0])

		var body bytes.Buffer
		dialer.SentMessage.WriteTo(&body)
		assert.Contains(t, body.String(), "Content-Type: text/html")
		assert.Contains(t, body.String(), "<h1>Fleet Report</h1>")
		assert.Contains(t, body.String(), "Content-Disposition: attachment; filename=\"incidents.txt\"")
	})

	t.Run("returns an error when dialer fails", func(t *testing.T) {
		dialer := &stubDialer{ShouldError: true}
		s := &sender{
			email:  "monitoring@example.com",
			dialer: dialer,
		}
		err := s.SendMail([]string{"ops@example.com"}, "Subject", "Body", "", nil)
		assert.Error(t, err)
	})
}
