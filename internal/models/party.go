package models

// Party describes the birthday party the RSVPs are for.
// Date and time fields are display strings and are rendered as is.
type Party struct {
	ChildName      string `json:"child_name"`
	Age            int    `json:"age"`
	PartyDate      string `json:"party_date"`
	PartyTimeStart string `json:"party_time_start"`
	PartyTimeEnd   string `json:"party_time_end"`
	VenueName      string `json:"venue_name"`
	VenueAddress   string `json:"venue_address"`
}
