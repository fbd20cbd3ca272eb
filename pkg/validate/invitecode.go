package validate

import "strings"

const (
	InviteCodeLength = 8
	// InviteCodeAlphabet leaves out characters that are easy to misread (0/O, 1/I/L).
	InviteCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// NormalizeInviteCode trims and upper-cases a user supplied code.
func NormalizeInviteCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsInviteCode reports whether s is a well-formed, already normalized code.
func IsInviteCode(s string) bool {
	if len(s) != InviteCodeLength {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(InviteCodeAlphabet, r) {
			return false
		}
	}
	return true
}
