package storage

import "realtyhub/models"

// ListingWriter is the interface any listing sink must satisfy.
type ListingWriter interface {
	Write(listings []models.Listing) error
	Close() error
}

// ListingSource yields a full catalog in its stored order.
type ListingSource interface {
	FetchAll() ([]models.Listing, error)
}

// Session slot names. All three are written together on sign-in and
// removed together on sign-out.
const (
	SlotAuthenticated = "isAuthenticated"
	SlotEmail         = "userEmail"
	SlotName          = "userName"
)

var sessionSlots = []string{SlotAuthenticated, SlotEmail, SlotName}

func slotsFromSession(s models.Session) map[string]string {
	slots := map[string]string{
		SlotAuthenticated: "true",
		SlotEmail:         s.Email,
	}
	if s.DisplayName != "" {
		slots[SlotName] = s.DisplayName
	}
	return slots
}

// sessionFromSlots restores a session; it requires the authenticated flag
// and a non-empty email.
func sessionFromSlots(slots map[string]string) (models.Session, bool) {
	if slots[SlotAuthenticated] != "true" || slots[SlotEmail] == "" {
		return models.Session{}, false
	}
	return models.Session{Email: slots[SlotEmail], DisplayName: slots[SlotName]}, true
}
