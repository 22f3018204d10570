package profile

// TeeShirtSize values accepted on a profile. NOT_SPECIFIED is the default
// for newly created profiles.
const TeeShirtSizeNotSpecified = "NOT_SPECIFIED"

var teeShirtSizes = map[string]bool{
	TeeShirtSizeNotSpecified: true,
	"XS_M":                   true,
	"XS_W":                   true,
	"S_M":                    true,
	"S_W":                    true,
	"M_M":                    true,
	"M_W":                    true,
	"L_M":                    true,
	"L_W":                    true,
	"XL_M":                   true,
	"XL_W":                   true,
	"XXL_M":                  true,
	"XXL_W":                  true,
	"XXXL_M":                 true,
	"XXXL_W":                 true,
}

// ValidTeeShirtSize reports whether size is an accepted tee-shirt size value.
func ValidTeeShirtSize(size string) bool {
	return teeShirtSizes[size]
}

// Profile is the wire representation of a user profile.
type Profile struct {
	DisplayName  string `json:"displayName,omitempty"`
	MainEmail    string `json:"mainEmail,omitempty"`
	TeeShirtSize string `json:"teeShirtSize,omitempty"`
}

// UpdateParams is the request body for updating the caller's profile.
// Empty fields are left unchanged.
type UpdateParams struct {
	DisplayName  string `json:"displayName,omitempty"`
	TeeShirtSize string `json:"teeShirtSize,omitempty"`
}

// ProfileError represents a standard error response for profile operations
type ProfileError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
