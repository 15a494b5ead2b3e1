package notifier

import (
	"errors"
	"fmt"
	"net/textproto"
)

var (
	// ErrSendFailed is matched by every SendError.
	ErrSendFailed = errors.New("failed to send email")

	// ErrRenderFailed indicates an email template could not be executed.
	ErrRenderFailed = errors.New("failed to render email")
)

// FailureKind tells which step of the SMTP exchange failed
type FailureKind string

const (
	// FailureConnect covers DNS lookup, dialing and the STARTTLS upgrade.
	FailureConnect FailureKind = "connect"
	// FailureAuth means the server rejected the account credentials.
	FailureAuth FailureKind = "auth"
	// FailureTransmit covers MAIL FROM, RCPT TO and DATA.
	FailureTransmit FailureKind = "transmit"
)

// SendError is returned when an email could not be delivered to the server
type SendError struct {
	Kind FailureKind
	To   string
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("%s: %s to %s: %v", ErrSendFailed, e.Kind, e.To, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

func (e *SendError) Is(target error) bool {
	return target == ErrSendFailed
}

// Retryable reports whether sending the same email again could succeed.
// Rejected credentials and permanent (5xx) SMTP replies are not retryable.
func (e *SendError) Retryable() bool {
	if e.Kind == FailureAuth {
		return false
	}
	var protoErr *textproto.Error
	if errors.As(e.Err, &protoErr) && protoErr.Code >= 500 {
		return false
	}
	return true
}

// AsSendError extracts the SendError from err, if any
func AsSendError(err error) (*SendError, bool) {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr, true
	}
	return nil, false
}
