package notifier

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"birthday-rsvp/internal/models"
)

// Config holds the SMTP account used to send every email
type Config struct {
	Server   string
	Port     int
	Email    string
	Password string // provider app password, not the primary account password
}

// Option customizes a Notifier
type Option func(*Notifier)

// WithTransport replaces the SMTP transport
func WithTransport(t Transport) Option {
	return func(n *Notifier) {
		n.transport = t
	}
}

// WithLogger replaces the default stdout logger
func WithLogger(log zerolog.Logger) Option {
	return func(n *Notifier) {
		n.log = log.With().Str("component", "Notifier").Logger()
	}
}

// WithClock sets the time source used for the Date header and the
// "received on" footer
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) {
		n.now = now
	}
}

// Notifier renders RSVP emails and sends them over SMTP with STARTTLS.
// Each call opens and closes its own connection; a Notifier only holds
// immutable configuration and may be shared.
type Notifier struct {
	cfg       Config
	transport Transport
	log       zerolog.Logger
	now       func() time.Time
}

// NewNotifier creates a new email notifier
func NewNotifier(cfg Config, opts ...Option) *Notifier {
	n := &Notifier{
		cfg:       cfg,
		transport: DefaultTransport,
		log:       zerolog.New(os.Stdout).With().Timestamp().Str("component", "Notifier").Logger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NotifyHost emails the configured account about a new RSVP
func (n *Notifier) NotifyHost(rsvp models.RSVP, party models.Party) error {
	html, err := renderHost(rsvp, party, n.now())
	if err != nil {
		n.log.Error().Err(err).Msg("Error rendering host notification")
		return err
	}
	return n.sendEmail(n.cfg.Email, hostSubject(party), html)
}

// NotifyGuest sends the RSVP confirmation to the guest who answered
func (n *Notifier) NotifyGuest(rsvp models.RSVP, party models.Party) error {
	html, err := renderGuest(rsvp, party, n.now())
	if err != nil {
		n.log.Error().Err(err).Msg("Error rendering guest confirmation")
		return err
	}
	return n.sendEmail(rsvp.Email, guestSubject(party), html)
}

// sendEmail performs connect, STARTTLS, AUTH and a single message
// transfer. The session is closed on every path. Failures are logged and
// returned as *SendError, nothing is retried.
func (n *Notifier) sendEmail(to, subject, htmlBody string) error {
	msg, err := buildMessage(n.cfg.Email, to, subject, htmlBody, n.now())
	if err != nil {
		n.log.Error().Err(err).Str("to", to).Msg("Error building email")
		return err
	}

	addr := net.JoinHostPort(n.cfg.Server, strconv.Itoa(n.cfg.Port))
	n.log.Debug().Str("addr", addr).Str("to", to).Msg("Attempting to send email")

	session, err := n.transport.Dial(addr)
	if err != nil {
		return n.fail(FailureConnect, to, fmt.Errorf("failed to connect to %s: %w", addr, err))
	}
	defer func() { _ = session.Close() }()

	if err := session.StartTLS(&tls.Config{ServerName: n.cfg.Server}); err != nil {
		return n.fail(FailureConnect, to, fmt.Errorf("failed to start TLS: %w", err))
	}

	if err := session.Auth(n.chooseAuth(session)); err != nil {
		return n.fail(FailureAuth, to, fmt.Errorf("authentication failed: %w", err))
	}

	if err := n.transmit(session, to, msg); err != nil {
		return n.fail(FailureTransmit, to, err)
	}

	// Some servers hang up right after DATA, the message is already accepted.
	if err := session.Quit(); err != nil {
		n.log.Debug().Err(err).Msg("Error during QUIT")
	}

	n.log.Info().Str("to", to).Str("subject", subject).Msg("Email sent successfully")
	return nil
}

func (n *Notifier) transmit(session Session, to string, msg []byte) error {
	if err := session.Mail(n.cfg.Email); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := session.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := session.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return nil
}

func (n *Notifier) fail(kind FailureKind, to string, err error) error {
	sendErr := &SendError{Kind: kind, To: to, Err: err}
	n.log.Error().
		Err(err).
		Str("kind", string(kind)).
		Str("to", to).
		Bool("retryable", sendErr.Retryable()).
		Msg("Error sending email")
	return sendErr
}
