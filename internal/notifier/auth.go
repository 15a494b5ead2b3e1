package notifier

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// loginAuth implements the LOGIN SMTP auth mechanism, which some providers
// (Outlook among them) offer instead of PLAIN.
type loginAuth struct {
	username string
	password string
	host     string
}

func (a *loginAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS && !isLocalhost(server.Name) {
		return "", nil, errors.New("unencrypted connection")
	}
	if server.Name != a.host {
		return "", nil, fmt.Errorf("unexpected server name %s", server.Name)
	}
	return "LOGIN", nil, nil
}

func (a *loginAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if !more {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(string(fromServer))) {
	case "username:", "user:":
		return []byte(a.username), nil
	case "password:", "pass:":
		return []byte(a.password), nil
	default:
		return nil, fmt.Errorf("unexpected login challenge: %s", string(fromServer))
	}
}

func isLocalhost(name string) bool {
	return name == "localhost" || name == "127.0.0.1" || name == "::1"
}

// chooseAuth picks PLAIN or LOGIN from the mechanisms the server advertises.
// PLAIN is used when it is offered or when nothing is advertised.
func (n *Notifier) chooseAuth(session Session) smtp.Auth {
	plain := smtp.PlainAuth("", n.cfg.Email, n.cfg.Password, n.cfg.Server)

	ok, mechs := session.Extension("AUTH")
	if !ok {
		return plain
	}
	offered := strings.Fields(strings.ToUpper(mechs))
	for _, m := range offered {
		if m == "PLAIN" {
			return plain
		}
	}
	for _, m := range offered {
		if m == "LOGIN" {
			return &loginAuth{username: n.cfg.Email, password: n.cfg.Password, host: n.cfg.Server}
		}
	}
	return plain
}
