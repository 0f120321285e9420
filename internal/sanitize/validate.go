package sanitize

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{6,}$`)
)

// IsValidObjectID reports whether id is a well-formed document identifier.
// Every lookup-by-id handler rejects before touching the store when this is
// false.
func IsValidObjectID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

// IsValidEmail reports whether email has a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsStrongPassword reports whether password is at least 6 characters from the
// allowed set and contains at least one letter and one digit.
func IsStrongPassword(password string) bool {
	if !passwordCharset.MatchString(password) {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
