// Package models holds the client-side shapes of the finance service's
// responses: the user profile and domain records (expenses and transactions).
package models

// User is the profile returned by GET /api/user/me. It is created once per
// validated session and never mutated afterwards; every consumer treats it as
// read-only.
//
// Email is the required identity field: a profile response without it is
// rejected by the session guard. BIN is the secondary secret checked by the
// step-up gate before sensitive views open.
type User struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	DateOfBirth string  `json:"dob"`
	Balance     float64 `json:"balance"`
	BIN         string  `json:"bin"`
}
