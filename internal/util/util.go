package util

import "strings"

// NonEmpty returns a pointer to the trimmed value, or nil when it is blank.
func NonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// JoinURL appends an absolute path (which may carry a query) to a base URL without doubling slashes.
func JoinURL(base, path string) string {
	base = strings.TrimRight(base, "/")
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return base + path
}

// MaskEmail keeps the first character of the local part and the domain, for log lines.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		if email == "" {
			return ""
		}

		return "***"
	}

	return email[:1] + "***" + email[at:]
}
