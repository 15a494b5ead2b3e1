package handler

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"birthday-rsvp/internal/models"
)

// Notifier sends the two RSVP emails
type Notifier interface {
	NotifyHost(rsvp models.RSVP, party models.Party) error
	NotifyGuest(rsvp models.RSVP, party models.Party) error
}

// RSVPHandler sends the RSVP emails for one party
type RSVPHandler struct {
	notifier Notifier
	party    models.Party
	log      zerolog.Logger
}

// NewRSVPHandler creates a new RSVP handler for a single party
func NewRSVPHandler(notifier Notifier, party models.Party) *RSVPHandler {
	return &RSVPHandler{
		notifier: notifier,
		party:    party,
		log:      zerolog.New(os.Stdout).With().Timestamp().Str("component", "RSVPHandler").Logger(),
	}
}

// SetLogger replaces the default stdout logger
func (h *RSVPHandler) SetLogger(log zerolog.Logger) {
	h.log = log.With().Str("component", "RSVPHandler").Logger()
}

// Party returns the party this handler sends emails for
func (h *RSVPHandler) Party() models.Party {
	return h.party
}

// HandleRSVP notifies the host and confirms to the guest. The guest is
// emailed even when the host notification fails.
func (h *RSVPHandler) HandleRSVP(rsvp models.RSVP) error {
	h.log.Info().
		Str("parent", rsvp.ParentName).
		Str("status", string(rsvp.AttendanceStatus)).
		Msg("Handling RSVP")

	return errors.Join(h.NotifyHost(rsvp), h.NotifyGuest(rsvp))
}

// NotifyHost emails the host about an RSVP
func (h *RSVPHandler) NotifyHost(rsvp models.RSVP) error {
	if err := h.notifier.NotifyHost(rsvp, h.party); err != nil {
		return fmt.Errorf("failed to notify host: %w", err)
	}
	return nil
}

// NotifyGuest sends the confirmation to the guest
func (h *RSVPHandler) NotifyGuest(rsvp models.RSVP) error {
	if err := h.notifier.NotifyGuest(rsvp, h.party); err != nil {
		return fmt.Errorf("failed to send confirmation to %s: %w", rsvp.Email, err)
	}
	return nil
}
