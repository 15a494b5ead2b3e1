package models

// AttendanceStatus represents the guest's answer to the invitation
type AttendanceStatus string

const (
	AttendanceYes   AttendanceStatus = "yes"
	AttendanceNo    AttendanceStatus = "no"
	AttendanceMaybe AttendanceStatus = "maybe"
)

// Attending reports whether the guest confirmed they are coming
func (s AttendanceStatus) Attending() bool {
	return s == AttendanceYes
}

// Label returns the human readable status shown to the host.
// Anything that is not a clear yes or no is treated as maybe.
func (s AttendanceStatus) Label() string {
	switch s {
	case AttendanceYes:
		return "Coming!"
	case AttendanceNo:
		return "Cannot Attend"
	default:
		return "Maybe"
	}
}

// Icon returns the emoji shown next to the status label
func (s AttendanceStatus) Icon() string {
	switch s {
	case AttendanceYes:
		return "✅"
	case AttendanceNo:
		return "❌"
	default:
		return "❓"
	}
}

// CSSClass returns the class used to colour the status badge
func (s AttendanceStatus) CSSClass() string {
	switch s {
	case AttendanceYes:
		return "status-yes"
	case AttendanceNo:
		return "status-no"
	default:
		return "status-maybe"
	}
}

// RSVP represents a guest's response as exported by the RSVP store
type RSVP struct {
	ChildName        string           `json:"child_name"`
	ParentName       string           `json:"parent_name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	AttendanceStatus AttendanceStatus `json:"attendance_status"`
	NumberOfKids     *int             `json:"number_of_kids,omitempty"`
	NumberOfAdults   *int             `json:"number_of_adults,omitempty"`
	FoodAllergies    string           `json:"food_allergies,omitempty"`
	BirthdayMessage  string           `json:"birthday_message,omitempty"`
}

// Kids returns the number of kids coming, 1 when the form left it out
func (r RSVP) Kids() int {
	return valueOr(r.NumberOfKids, 1)
}

// Adults returns the number of adults coming, 1 when the form left it out
func (r RSVP) Adults() int {
	return valueOr(r.NumberOfAdults, 1)
}

// Count is a helper for building RSVPs with explicit headcounts
func Count(n int) *int {
	return &n
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
