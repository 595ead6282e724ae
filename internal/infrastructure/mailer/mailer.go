package mailer

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

type Message struct {
	To      []string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// Timeout bounds one delivery when the caller's ctx has no deadline.
	Timeout time.Duration
}

const defaultTimeout = 30 * time.Second

// SMTP sends plain-text mail through one relay, STARTTLS when offered.
type SMTP struct {
	cfg    SMTPConfig
	client *mail.Client
}

func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	opts := []mail.Option{
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
		mail.WithDialContextFunc(deadlineDialer(cfg.Timeout)),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	c, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: client for %s: %w", cfg.Host, err)
	}
	return &SMTP{cfg: cfg, client: c}, nil
}

// deadlineDialer pins every read and write on the relay connection to the ctx deadline,
// or to fallback from now when ctx has none.
func deadlineDialer(fallback time.Duration) mail.DialContextFunc {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		var d net.Dialer
		conn, err := d.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		deadline, ok := ctx.Deadline()
		if !ok {
			deadline = time.Now().Add(fallback)
		}
		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return conn, nil
	}
}

func (m *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("mailer: message %q has no recipients", msg.Subject)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.Timeout)
		defer cancel()
	}

	out := mail.NewMsg()
	if err := out.From(m.cfg.From); err != nil {
		return fmt.Errorf("mailer: from %q: %w", m.cfg.From, err)
	}
	if err := out.To(msg.To...); err != nil {
		return fmt.Errorf("mailer: recipients %v: %w", msg.To, err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("mailer: send %q: %w", msg.Subject, err)
	}
	return nil
}

// LogMailer only logs; used when no SMTP host is configured.
type LogMailer struct {
	Log logrus.FieldLogger
}

func (m LogMailer) Send(_ context.Context, msg Message) error {
	m.Log.WithFields(logrus.Fields{
		"to":      strings.Join(msg.To, ","),
		"subject": msg.Subject,
	}).Info("mail not sent: SMTP disabled")
	return nil
}
