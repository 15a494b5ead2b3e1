package notifier

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	htmlBody := "<html><body><p>Hi 🎉 a=b</p>\n<p>" + strings.Repeat("long ", 40) + "line</p></body></html>"
	date := time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

	raw, err := buildMessage("host@example.com", "guest@example.com", "🎉 RSVP Confirmation - Emma's Birthday Party", htmlBody, date)
	require.NoError(t, err)

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "host@example.com", msg.Header.Get("From"))
	assert.Equal(t, "guest@example.com", msg.Header.Get("To"))
	assert.Equal(t, "1.0", msg.Header.Get("MIME-Version"))
	assert.Regexp(t, `^<[0-9a-f-]{36}@example\.com>$`, msg.Header.Get("Message-ID"))

	sentAt, err := msg.Header.Date()
	require.NoError(t, err)
	assert.True(t, sentAt.Equal(date))

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "🎉 RSVP Confirmation - Emma's Birthday Party", subject)

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	mr := multipart.NewReader(msg.Body, params["boundary"])
	part, err := mr.NextPart()
	require.NoError(t, err)
	assert.Equal(t, `text/html; charset="utf-8"`, part.Header.Get("Content-Type"))

	got, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, htmlBody, strings.ReplaceAll(string(got), "\r\n", "\n"))

	_, err = mr.NextPart()
	assert.ErrorIs(t, err, io.EOF, "message must carry exactly one part")
}

func TestBuildMessage_StripsHeaderLineBreaks(t *testing.T) {
	t.Parallel()

	raw, err := buildMessage("host@example.com", "guest@example.com\r\nBcc: victim@example.com", "Hi\r\nX-Evil: 1", "<p>x</p>", time.Now())
	require.NoError(t, err)

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Empty(t, msg.Header.Get("Bcc"))
	assert.Empty(t, msg.Header.Get("X-Evil"))
	assert.Equal(t, "guest@example.comBcc: victim@example.com", msg.Header.Get("To"))
}

func TestMessageID_WithoutDomain(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasSuffix(messageID("not-an-address"), "@localhost>"))
	assert.True(t, strings.HasSuffix(messageID("trailing@"), "@localhost>"))
}
