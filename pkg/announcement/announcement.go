package announcement

// Announcement is the cached near-sold-out notice. Message is empty when no
// conference is close to selling out.
type Announcement struct {
	Message string `json:"message"`
}

// AnnouncementError represents an error response for announcement operations
type AnnouncementError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
