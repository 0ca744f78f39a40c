package entity

import (
	"time"
)

// User is a marketplace participant. Passwords are stored as bcrypt hashes
// in the Password field and never leave the service layer.
type User struct {
	ID                  string
	Email               string
	Password            string
	Name                string
	CompanyName         string
	Industry            string
	IndustryDescription string
	LogoURL             string
	CreatedAt           time.Time
}
