package validator

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hexIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidObjectID checks if the string looks like a Mongo object id
func IsValidObjectID(id string) bool {
	return hexIDRegex.MatchString(id)
}

// IsValidDate checks if the date string is in YYYY-MM-DD format
func IsValidDate(date string) bool {
	return dateRegex.MatchString(date)
}
