package alert

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/pkg/mail"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// ChannelSender delivers one alert message to one destination. Implementations
// must be safe for concurrent use.
type ChannelSender interface {
	Send(ctx context.Context, channel model.AlertChannel, msg AlertMessage) error
}

type emailSender struct {
	sender mail.Sender
}

func (s *emailSender) Send(_ context.Context, channel model.AlertChannel, msg AlertMessage) error {
	var text strings.Builder
	text.WriteString(msg.Summary)
	text.WriteString("\n\n")
	for _, key := range sortedKeys(msg.DetailFields) {
		fmt.Fprintf(&text, "%s: %s\n", key, msg.DetailFields[key])
	}
	var html strings.Builder
	html.WriteString("<body><table style=\"border-collapse: collapse;\">")
	for _, key := range sortedKeys(msg.DetailFields) {
		fmt.Fprintf(&html, "<tr><td style=\"border: 1px solid #dddddd; padding: 8px; background-color: #f2f2f2;\">%s</td><td style=\"border: 1px solid #dddddd; padding: 8px;\">%s</td></tr>", key, msg.DetailFields[key])
	}
	html.WriteString("</table></body>")
	if err := s.sender.SendMail([]string{channel.Destination}, msg.Title, html.String(), text.String(), nil); err != nil {
		return fmt.Errorf("emailSender.Send: %w", err)
	}
	return nil
}

type webhookSender struct {
	client *http.Client
}

// Send posts the full alert payload as JSON to the channel destination. Any
// non-2xx response is a delivery failure.
func (s *webhookSender) Send(ctx context.Context, channel model.AlertChannel, msg AlertMessage) error {
	payload := struct {
		Title    string            `json:"title"`
		Summary  string            `json:"summary"`
		Severity string            `json:"severity"`
		Details  map[string]string `json:"details"`
	}{
		Title:    msg.Title,
		Summary:  msg.Summary,
		Severity: msg.Severity,
		Details:  msg.DetailFields,
	}
	return s.post(ctx, channel.Destination, payload)
}

type chatSender struct {
	client *http.Client
}

// Send renders the alert as a single chat line for slack-compatible incoming
// webhooks.
func (s *chatSender) Send(ctx context.Context, channel model.AlertChannel, msg AlertMessage) error {
	var details strings.Builder
	for _, key := range sortedKeys(msg.DetailFields) {
		fmt.Fprintf(&details, "\n• %s: %s", key, msg.DetailFields[key])
	}
	payload := struct {
		Text string `json:"text"`
	}{
		Text: fmt.Sprintf("*%s*\n%s%s", msg.Title, msg.Summary, details.String()),
	}
	return post(ctx, s.client, channel.Destination, payload)
}

func (s *webhookSender) post(ctx context.Context, destination string, payload interface{}) error {
	return post(ctx, s.client, destination, payload)
}

func post(ctx context.Context, client *http.Client, destination string, payload interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("alert channel marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, destination, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("alert channel creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("alert channel delivery: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("alert channel delivery: destination returned status %d", resp.StatusCode)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func NewEmailSender(sender mail.Sender) ChannelSender {
	return &emailSender{sender: sender}
}

func NewWebhookSender(timeout time.Duration) ChannelSender {
	return &webhookSender{client: &http.Client{Timeout: timeout}}
}

func NewChatSender(timeout time.Duration) ChannelSender {
	return &chatSender{client: &http.Client{Timeout: timeout}}
}

// DefaultSenders wires the three supported channel types.
func DefaultSenders(mailSender mail.Sender, httpTimeout time.Duration) map[string]ChannelSender {
	return map[string]ChannelSender{
		model.AlertChannelEmail:   NewEmailSender(mailSender),
		model.AlertChannelWebhook: NewWebhookSender(httpTimeout),
		model.AlertChannelChat:    NewChatSender(httpTimeout),
	}
}
