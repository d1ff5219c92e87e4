package textutil

import "unicode/utf8"

// WeakHint is appended to PasswordMessages.Weak to suggest special characters.
const WeakHint = " (-#&_%$)"

// PasswordMessages holds the caller-supplied verdicts of VerifyPasswordStrength.
type PasswordMessages struct {
	Strong   string
	Weak     string
	TooShort string
	Empty    string
}

// VerifyPasswordStrength classifies password and returns the matching message.
// Checks run in order: empty, shorter than minLength characters, contains a
// special character (strong), otherwise weak with WeakHint appended.
func VerifyPasswordStrength(password string, minLength int, m PasswordMessages) string {
	switch {
	case password == "":
		return m.Empty
	case utf8.RuneCountInString(password) < minLength:
		return m.TooShort
	case HasSpecialCharacter(password):
		return m.Strong
	default:
		return m.Weak + WeakHint
	}
}

// IsStrongPassword reports whether password has at least minLength characters
// and at least one special character.
func IsStrongPassword(password string, minLength int) bool {
	return utf8.RuneCountInString(password) >= minLength && HasSpecialCharacter(password)
}

// HasSpecialCharacter reports whether s contains anything outside [A-Za-z0-9].
// Accented letters and other non-ASCII characters count as special.
func HasSpecialCharacter(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return true
		}
	}
	return false
}
