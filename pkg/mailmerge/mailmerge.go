// Package mailmerge substitutes recipient fields into message templates.
//
// Templates carry placeholder tokens of the form {{name}} or {{email}}.
// Rendering is a pure function: every occurrence of a known token is
// replaced with the matching recipient field, unknown tokens are left
// verbatim, and nothing else is touched.
package mailmerge

import (
	"strings"

	"github.com/sendloop/sendloop/pkg/recipients"
)

// Template is the operator-authored subject and body, taken as an
// immutable snapshot into every send job at creation time.
type Template struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// IsComplete reports whether both subject and body are set.
func (t Template) IsComplete() bool {
	return strings.TrimSpace(t.Subject) != "" && strings.TrimSpace(t.Body) != ""
}

// Message is a rendered subject/body pair for one recipient.
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// sampleRecipient is used by Preview when the list is empty.
var sampleRecipient = recipients.Recipient{Name: "Sample Name", Address: "sample@example.com"}

// Render substitutes all placeholder tokens in t with fields of r.
func Render(t Template, r recipients.Recipient) Message {
	rep := strings.NewReplacer(
		"{{name}}", r.Name,
		"{{email}}", r.Address,
	)
	return Message{
		Subject: rep.Replace(t.Subject),
		Body:    rep.Replace(t.Body),
	}
}

// Preview renders t against the first recipient of list, or against a
// fallback sample identity when the list is empty. Side-effect free.
func Preview(t Template, list []recipients.Recipient) Message {
	if len(list) == 0 {
		return Render(t, sampleRecipient)
	}
	return Render(t, list[0])
}
