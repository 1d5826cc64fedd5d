package mailer

import "fmt"

// Email represents a fully-prepared message ready for delivery.
type Email struct {
	From    string // sender address, usually the credential identity
	To      string // single recipient address
	Subject string
	HTML    string // HTML body
	Text    string // plain text alternative, may be empty
}

// Credential is an outbound mail credential captured from the operator.
// Only a verified credential may be attached to a send job.
type Credential struct {
	Identity string `json:"identity"` // account address, also used as From
	Secret   string `json:"-"`        // app password or API key, never serialized
	Verified bool   `json:"verified"`
}

// FormatAddress formats a name and address into RFC 5322 form.
// Returns "Name <address>" if name is provided, otherwise just the address.
func FormatAddress(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}
