// Package mailer defines the outbound mail capability consumed by the
// send-job core: prepared Email values, operator Credentials, the Sender
// and Transport interfaces, and body rendering/sanitization.
//
// Provider adapters live in subpackages (smtp, resend). The core never
// talks to a provider directly; it receives a Transport and opens a
// Sender per job, which keeps dispatch fully fakeable in tests.
package mailer
