// Package cookie provides HMAC-signed cookies for carrying the session
// token between requests. Values are signed, not encrypted: the token is
// an opaque random ID with nothing secret inside, it only has to be
// tamper-proof.
package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNotFound indicates the cookie is absent from the request.
	ErrNotFound = errors.New("cookie: not found")

	// ErrBadSecret indicates the signing secret is too short.
	ErrBadSecret = errors.New("cookie: secret must be 32+ bytes")

	// ErrBadSignature indicates the cookie value failed verification.
	ErrBadSignature = errors.New("cookie: invalid signature")
)

// Manager signs and verifies cookie values.
type Manager struct {
	secret   []byte
	secure   bool
	sameSite http.SameSite
}

// New creates a cookie Manager. The secret must be at least 32 bytes.
func New(secret string, secure bool) (*Manager, error) {
	if len(secret) < 32 {
		return nil, ErrBadSecret
	}
	return &Manager{
		secret:   []byte(secret),
		secure:   secure,
		sameSite: http.SameSiteLaxMode,
	}, nil
}

// Set writes a signed cookie to the response.
func (m *Manager) Set(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    m.sign(value),
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

// Get reads and verifies a signed cookie from the request.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", ErrNotFound
	}
	return m.verify(c.Value)
}

// Delete expires the cookie on the client.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

func (m *Manager) sign(value string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(value))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return base64.RawURLEncoding.EncodeToString([]byte(value)) + "." + sig
}

func (m *Manager) verify(raw string) (string, error) {
	encoded, sig, ok := strings.Cut(raw, ".")
	if !ok {
		return "", ErrBadSignature
	}
	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrBadSignature
	}
	want, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", ErrBadSignature
	}
	mac := hmac.New(sha256.New, m.secret)
	mac.Write(value)
	if !hmac.Equal(mac.Sum(nil), want) {
		return "", ErrBadSignature
	}
	return string(value), nil
}
