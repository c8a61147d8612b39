package services

import "strings"

// Backend auth failures are shown to the user in Turkish. Anything not in
// the table passes through unchanged.
var authMessages = []struct {
	match   string
	message string
}{
	{"Invalid login credentials", "E-posta veya şifre hatalı"},
	{"User already registered", "Bu e-posta adresi zaten kayıtlı"},
	{"Email not confirmed", "E-posta adresinizi doğrulayın"},
}

// TranslateAuthError maps a backend auth error message to its user-facing
// Turkish form.
func TranslateAuthError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, m := range authMessages {
		if strings.Contains(msg, m.match) {
			return m.message
		}
	}
	return msg
}
