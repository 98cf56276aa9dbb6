package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// SendMessage sends a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed sends a rich embed message to the webhook.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	username := options.Username
	if username == "" {
		username = d.config.DefaultUsername
	}

	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	embed := Embed{
		Title:       options.Title,
		Description: options.Description,
		Color:       colorForType(options.Type),
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Fields:      options.Fields,
		Footer:      options.Footer,
	}

	return d.send(ctx, WebhookPayload{
		Username: username,
		Embeds:   []Embed{embed},
	})
}

// SendError sends an error embed with the error message as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

// SendSuccess sends a success embed.
func (d *discordImpl) SendSuccess(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeSuccess,
		Title:       title,
		Description: description,
	})
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Title:       title,
		Description: description,
	})
}

// SendInfo sends an informational embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
	})
}

// SendNotification sends an embed with arbitrary key/value fields.
func (d *discordImpl) SendNotification(ctx context.Context, title, description string, fields map[string]string) error {
	embedFields := make([]EmbedField, 0, len(fields))
	for name, value := range fields {
		embedFields = append(embedFields, EmbedField{Name: name, Value: value, Inline: true})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
		Fields:      embedFields,
	})
}

// Close releases resources. Currently a no-op kept for interface symmetry.
func (d *discordImpl) Close() error {
	return nil
}

// send posts the payload to the webhook with a small retry loop.
func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create webhook request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		lastErr = fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			break
		}
	}

	return fmt.Errorf("failed to send Discord webhook: %w", lastErr)
}

func colorForType(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}
