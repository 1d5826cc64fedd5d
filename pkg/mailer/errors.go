package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("mailer: email must have a recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("mailer: email must have a subject")

	// ErrNoContent indicates no body content was provided.
	ErrNoContent = errors.New("mailer: email must have content")

	// ErrMissingCredential indicates an incomplete credential.
	ErrMissingCredential = errors.New("mailer: credential identity and secret required")

	// ErrVerifyFailed indicates the provider rejected the credential.
	ErrVerifyFailed = errors.New("mailer: credential verification failed")

	// ErrTransportFailed indicates the transport could not be established.
	ErrTransportFailed = errors.New("mailer: failed to establish transport")

	// ErrSendFailed indicates delivery of one email failed.
	ErrSendFailed = errors.New("mailer: failed to send email")

	// ErrUnknownFormat indicates an unsupported body format.
	ErrUnknownFormat = errors.New("mailer: unknown body format")
)
