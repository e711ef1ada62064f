package mail

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jasswanth/portfolio-backend/internal/model"
)

// Channel labels reported back in the submission response.
const (
	ChannelAutoReply    = "Auto-reply"
	ChannelNotification = "Notification"
)

// EmailStatus records the outcome of one notification channel.
type EmailStatus struct {
	Type  string `json:"type"`
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// DispatcherConfig configures the two outgoing channels.
type DispatcherConfig struct {
	// FromAddress is the authenticated account both emails are sent from.
	FromAddress string
	// NotifyTo receives the internal notification (the site owner).
	NotifyTo string
	// OwnerName appears in template signatures and the from display name.
	OwnerName string
	// Timeout bounds a full Dispatch call. Zero means the 10s default.
	Timeout time.Duration
}

const defaultDispatchTimeout = 10 * time.Second

// Dispatcher composes and sends the auto-reply and owner-notification emails
// for a persisted contact message.
type Dispatcher struct {
	mailer Mailer
	cfg    DispatcherConfig
}

// NewDispatcher creates a Dispatcher delivering through the given Mailer.
func NewDispatcher(mailer Mailer, cfg DispatcherConfig) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultDispatchTimeout
	}
	return &Dispatcher{mailer: mailer, cfg: cfg}
}

// SendAutoReply emails a confirmation to the submitter.
func (d *Dispatcher) SendAutoReply(ctx context.Context, msg *model.ContactMessage) error {
	html, err := renderAutoReply(autoReplyData{
		Name:    msg.Name,
		Subject: msg.Subject,
		Owner:   d.cfg.OwnerName,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return d.mailer.Send(ctx, Email{
		FromName: d.cfg.OwnerName + " | Portfolio",
		From:     d.cfg.FromAddress,
		To:       msg.Email,
		Subject:  fmt.Sprintf("Re: %s — Thank You for Reaching Out!", msg.Subject),
		HTML:     html,
	})
}

// SendNotification emails the full submission, including request metadata and
// a localized timestamp, to the site owner with Reply-To set to the submitter.
func (d *Dispatcher) SendNotification(ctx context.Context, msg *model.ContactMessage) error {
	html, err := renderNotification(notificationData{
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		Message:    msg.Message,
		IPAddress:  orNA(msg.IPAddress),
		UserAgent:  orNA(msg.UserAgent),
		ReceivedAt: formatReceivedAt(msg.CreatedAt),
		Owner:      d.cfg.OwnerName,
		Year:       time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return d.mailer.Send(ctx, Email{
		FromName: "Portfolio Contact System",
		From:     d.cfg.FromAddress,
		To:       d.cfg.NotifyTo,
		ReplyTo:  msg.Email,
		Subject:  fmt.Sprintf("New Contact: %q from %s", msg.Subject, msg.Name),
		HTML:     html,
	})
}

// Dispatch issues both sends concurrently and waits for both outcomes, bounded
// by the configured timeout. One channel failing never cancels or masks the
// other; the result is always two status records, never an error.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *model.ContactMessage) []EmailStatus {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	statuses := []EmailStatus{
		{Type: ChannelAutoReply},
		{Type: ChannelNotification},
	}
	sends := []func(context.Context, *model.ContactMessage) error{
		d.SendAutoReply,
		d.SendNotification,
	}

	var wg sync.WaitGroup
	for i, send := range sends {
		wg.Add(1)
		go func(i int, send func(context.Context, *model.ContactMessage) error) {
			defer wg.Done()
			if err := send(ctx, msg); err != nil {
				statuses[i].Error = err.Error()
				return
			}
			statuses[i].Sent = true
		}(i, send)
	}
	wg.Wait()

	return statuses
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
