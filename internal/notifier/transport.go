package notifier

import (
	"crypto/tls"
	"io"
	"net/smtp"
)

// Session is a single SMTP conversation. *smtp.Client satisfies it.
type Session interface {
	StartTLS(config *tls.Config) error
	Extension(ext string) (bool, string)
	Auth(a smtp.Auth) error
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// Transport opens SMTP sessions
type Transport interface {
	Dial(addr string) (Session, error)
}

// TransportFunc adapts a plain function to the Transport interface
type TransportFunc func(addr string) (Session, error)

func (f TransportFunc) Dial(addr string) (Session, error) {
	return f(addr)
}

type smtpTransport struct{}

// DefaultTransport dials a plaintext SMTP connection using net/smtp.
// No timeout is configured, the operating system defaults apply.
var DefaultTransport Transport = smtpTransport{}

func (smtpTransport) Dial(addr string) (Session, error) {
	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, err
	}
	return client, nil
}
