package domain

// Course is an active course as reported by the source system.
type Course struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Section string `json:"section,omitempty"`
	Room    string `json:"room,omitempty"`
	Link    string `json:"link,omitempty"`
}

// Teacher is a course teacher or TA profile. Photo lookups are rate-limited
// upstream, so callers cache these.
type Teacher struct {
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}
