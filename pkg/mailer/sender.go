package mailer

import "context"

// Sender delivers prepared emails. Implementations wrap one provider
// connection opened for a single credential.
type Sender interface {
	// Send delivers one email. The Email must have To, Subject and HTML set.
	Send(ctx context.Context, email *Email) error
}

// Transport is the capability of establishing a Sender for a credential.
//
// Open failure is the only job-fatal condition during dispatch: a job
// aborts with a top-level error when the transport itself cannot be
// established, while individual Send failures are recorded per recipient
// and never terminate the job.
type Transport interface {
	// Open validates the credential against the provider and returns a
	// Sender bound to it.
	Open(ctx context.Context, cred Credential) (Sender, error)

	// Verify checks the credential without sending anything.
	// Used before job creation so that Open failures stay rare.
	Verify(ctx context.Context, cred Credential) error
}
