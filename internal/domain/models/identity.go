package models

// Identity is the display identity of the caller, supplied by the external
// identity collaborator. The core uses it only for attribution.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"fullName,omitempty"`
	Company  string `json:"company,omitempty"`
}

func (i Identity) DisplayName() string {
	if i.FullName != "" {
		return i.FullName
	}
	return i.Username
}
