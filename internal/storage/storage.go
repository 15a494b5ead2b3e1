package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"birthday-rsvp/internal/models"
)

// ErrRSVPNotFound is returned when an index does not address an RSVP
var ErrRSVPNotFound = errors.New("rsvp not found")

// Storage gives read access to an RSVP export produced by the RSVP store.
// The file is never written.
type Storage struct {
	mu    sync.RWMutex
	rsvps []models.RSVP
	file  string
}

// NewStorage creates a new storage instance and loads the export
func NewStorage(filePath string) (*Storage, error) {
	s := &Storage{
		rsvps: make([]models.RSVP, 0),
		file:  filePath,
	}

	if err := s.Load(); err != nil {
		return nil, fmt.Errorf("failed to load storage: %w", err)
	}

	return s, nil
}

// GetRSVP retrieves an RSVP by its position in the export
func (s *Storage) GetRSVP(index int) (*models.RSVP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.rsvps) {
		return nil, fmt.Errorf("%w: index %d", ErrRSVPNotFound, index)
	}
	rsvp := s.rsvps[index]
	return &rsvp, nil
}

// GetAllRSVPs returns all RSVPs
func (s *Storage) GetAllRSVPs() []models.RSVP {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rsvps := make([]models.RSVP, len(s.rsvps))
	copy(rsvps, s.rsvps)
	return rsvps
}

// GetRSVPsByStatus returns RSVPs filtered by attendance status.
// Filtering by maybe also matches unrecognised statuses, as they are
// presented as maybe everywhere else.
func (s *Storage) GetRSVPsByStatus(status models.AttendanceStatus) []models.RSVP {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.RSVP
	for _, r := range s.rsvps {
		if r.AttendanceStatus.Label() == status.Label() {
			result = append(result, r)
		}
	}
	return result
}

// Load re-reads the export from disk
func (s *Storage) Load() error {
	data, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var rsvps []models.RSVP
	if len(data) > 0 {
		if err := json.Unmarshal(data, &rsvps); err != nil {
			return fmt.Errorf("failed to unmarshal data: %w", err)
		}
	}
	if rsvps == nil {
		rsvps = make([]models.RSVP, 0)
	}

	s.mu.Lock()
	s.rsvps = rsvps
	s.mu.Unlock()
	return nil
}

// LoadParty reads the party description
func LoadParty(filePath string) (*models.Party, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var party models.Party
	if err := json.Unmarshal(data, &party); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}
	return &party, nil
}
