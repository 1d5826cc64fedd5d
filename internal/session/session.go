// Package session holds per-owner state: the verified credential, the
// recipient list and the composed template. An owner is a browser
// session identified by a signed cookie token; one owner holds at most
// one send job, keyed in the job store by the same token.
package session

import (
	"github.com/sendloop/sendloop/pkg/mailer"
	"github.com/sendloop/sendloop/pkg/mailmerge"
	"github.com/sendloop/sendloop/pkg/recipients"
)

// Session is a copy of one owner's state. Accessors on Manager return
// copies, never shared references: a send job snapshots this data at
// creation and later edits must not reach it.
type Session struct {
	Token      string
	Credential mailer.Credential
	Recipients []recipients.Recipient
	Template   mailmerge.Template
	Format     mailer.BodyFormat
}

// Verified reports whether the session carries a verified credential.
func (s Session) Verified() bool {
	return s.Credential.Verified
}
