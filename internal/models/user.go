// Package models defines the data types shared by repositories and services.
package models

// User is a registered storefront account. PasswordHash holds a verifier
// derived from the password and Salt, never the password itself.
type User struct {
	ID           int64
	UserName     string
	Salt         []byte
	PasswordHash []byte
}
