package models

// SessionRequest carries the opaque user credential set by the UI shell after
// login.
type SessionRequest struct {
	Token string `json:"token"`
}
