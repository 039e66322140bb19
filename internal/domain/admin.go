package domain

// Admin holds a plaintext credential, matching the legacy file format.
// Login compares it by equality; see the README before using this beyond
// a demo setup.
type Admin struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
}
