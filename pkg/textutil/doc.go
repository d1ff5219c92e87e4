// Package textutil provides small string helpers for storefront-style UIs:
// initials, capitalization, letter spacing, password strength hints and
// copyright notices.
//
// All functions are pure apart from Copyrights, which reads the system clock.
// Messages shown to users are supplied by the caller, so the package carries
// no language of its own:
//
//	msg := textutil.VerifyPasswordStrength(pw, 8, textutil.PasswordMessages{
//		Strong:   "Strong password",
//		Weak:     "Add a special character",
//		TooShort: "Too short",
//		Empty:    "Password required",
//	})
//
// Words are delimited by the space character only.
package textutil
