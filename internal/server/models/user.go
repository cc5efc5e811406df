package models

import "time"

// User is an account able to log in. RefreshToken/RefreshTokenExpiry hold the
// single refresh token currently valid for the user; an empty token means
// none has been issued yet.
type User struct {
	ID                 string
	UserName           string
	PasswordHash       string
	Roles              []string
	RefreshToken       string
	RefreshTokenExpiry time.Time
	CreatedAt          time.Time
}
