package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birthday-rsvp/internal/models"
	"birthday-rsvp/internal/storage"
)

const exportJSON = `[
  {"child_name": "Sarah", "parent_name": "Jennifer Smith", "email": "jennifer@email.com", "phone": "(555) 123-4567",
   "attendance_status": "yes", "number_of_kids": 1, "number_of_adults": 2, "food_allergies": "None"},
  {"child_name": "Leo", "parent_name": "Mark Lee", "email": "mark@email.com", "attendance_status": "no"},
  {"child_name": "Mia", "parent_name": "Ana Diaz", "email": "ana@email.com", "attendance_status": "maybe"},
  {"child_name": "Noah", "parent_name": "Tom Ray", "email": "tom@email.com"}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStorage_Export(t *testing.T) {
	t.Parallel()

	s, err := storage.NewStorage(writeFile(t, "rsvps.json", exportJSON))
	require.NoError(t, err)

	all := s.GetAllRSVPs()
	require.Len(t, all, 4)
	assert.Equal(t, "Jennifer Smith", all[0].ParentName)
	assert.Equal(t, 2, all[0].Adults())
	assert.Equal(t, 1, all[1].Adults())

	rsvp, err := s.GetRSVP(1)
	require.NoError(t, err)
	assert.Equal(t, "mark@email.com", rsvp.Email)

	_, err = s.GetRSVP(4)
	assert.ErrorIs(t, err, storage.ErrRSVPNotFound)
	_, err = s.GetRSVP(-1)
	assert.ErrorIs(t, err, storage.ErrRSVPNotFound)
}

func TestStorage_GetRSVPsByStatus(t *testing.T) {
	t.Parallel()

	s, err := storage.NewStorage(writeFile(t, "rsvps.json", exportJSON))
	require.NoError(t, err)

	yes := s.GetRSVPsByStatus(models.AttendanceYes)
	require.Len(t, yes, 1)
	assert.Equal(t, "Sarah", yes[0].ChildName)

	no := s.GetRSVPsByStatus(models.AttendanceNo)
	require.Len(t, no, 1)
	assert.Equal(t, "Leo", no[0].ChildName)

	maybe := s.GetRSVPsByStatus(models.AttendanceMaybe)
	require.Len(t, maybe, 2)
	assert.Equal(t, "Mia", maybe[0].ChildName)
	assert.Equal(t, "Noah", maybe[1].ChildName)
}

func TestStorage_CopiesAreIndependent(t *testing.T) {
	t.Parallel()

	s, err := storage.NewStorage(writeFile(t, "rsvps.json", exportJSON))
	require.NoError(t, err)

	all := s.GetAllRSVPs()
	all[0].ParentName = "changed"
	rsvp, err := s.GetRSVP(0)
	require.NoError(t, err)
	rsvp.Email = "changed"

	fresh, err := s.GetRSVP(0)
	require.NoError(t, err)
	assert.Equal(t, "Jennifer Smith", fresh.ParentName)
	assert.Equal(t, "jennifer@email.com", fresh.Email)
}

func TestStorage_EmptyAndInvalid(t *testing.T) {
	t.Parallel()

	s, err := storage.NewStorage(writeFile(t, "empty.json", ""))
	require.NoError(t, err)
	assert.Empty(t, s.GetAllRSVPs())

	_, err = storage.NewStorage(writeFile(t, "bad.json", "{not json"))
	assert.Error(t, err)

	_, err = storage.NewStorage(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadParty(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "party.json", `{"child_name": "Emma", "age": 7, "party_date": "December 25, 2026",
		"party_time_start": "3:00 PM", "party_time_end": "6:00 PM",
		"venue_name": "Happy Kids Party Place", "venue_address": "123 Rainbow Street, Funtown, State 12345"}`)

	party, err := storage.LoadParty(path)
	require.NoError(t, err)
	assert.Equal(t, "Emma", party.ChildName)
	assert.Equal(t, 7, party.Age)
	assert.Equal(t, "Happy Kids Party Place", party.VenueName)

	_, err = storage.LoadParty(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
