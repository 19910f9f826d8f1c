package domain

import (
	"strings"

	pstrings "folio/internal/platform/strings"
)

// ContactForm is the contact page submission
type ContactForm struct {
	Subject string `form:"subject" validate:"max=200"`
	Body    string `form:"body" validate:"max=5000"`
}

// ComposeURL appends the form fields to action as a query string, each value escaped
// the way encodeURIComponent does (spaces as %20)
func ComposeURL(action string, f ContactForm) string {
	params := []string{
		"subject=" + pstrings.EncodeURIComponent(f.Subject),
		"body=" + pstrings.EncodeURIComponent(f.Body),
	}
	sep := "?"
	if strings.Contains(action, "?") {
		sep = "&"
	}
	return action + sep + strings.Join(params, "&")
}
