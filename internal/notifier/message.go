package notifier

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

var headerSanitizer = strings.NewReplacer("\r", "", "\n", "")

// buildMessage creates an RFC 5322 message whose body is a
// multipart/alternative container holding a single HTML part.
func buildMessage(from, to, subject, htmlBody string, date time.Time) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {`text/html; charset="utf-8"`},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create html part: %w", err)
	}

	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(htmlBody)); err != nil {
		return nil, fmt.Errorf("failed to encode html part: %w", err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode html part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	var msg bytes.Buffer
	writeHeader(&msg, "From", from)
	writeHeader(&msg, "To", to)
	writeHeader(&msg, "Subject", mime.QEncoding.Encode("utf-8", headerSanitizer.Replace(subject)))
	writeHeader(&msg, "Date", date.Format(time.RFC1123Z))
	writeHeader(&msg, "Message-ID", messageID(from))
	writeHeader(&msg, "MIME-Version", "1.0")
	writeHeader(&msg, "Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", mw.Boundary()))
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	return msg.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	fmt.Fprintf(buf, "%s: %s\r\n", key, headerSanitizer.Replace(value))
}

func messageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
