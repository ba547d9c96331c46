package validate

import (
	"regexp"
	"strings"
)

var (
	urlPattern   = regexp.MustCompile(`(?i)^(https?|ftp)://[^\s/$.?#].[^\s]*$`)
	emailPattern = regexp.MustCompile(`(?i)^[\w\-.]+@[\w\-]+\.[a-z]{2,}$`)
	pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

func IsNullOrBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func IsValidURL(value string) bool {
	return urlPattern.MatchString(value)
}

func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsValidPrice accepts a non-negative decimal with at most two decimal places.
func IsValidPrice(value string) bool {
	return pricePattern.MatchString(value)
}
