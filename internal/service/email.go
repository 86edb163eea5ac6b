package service

import "strings"

// NormalizeEmail lower-cases the domain portion of an address. The local
// part is case-sensitive per RFC 5321, so its casing is preserved.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
