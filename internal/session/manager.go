package session

import (
	"sync"

	"github.com/sendloop/sendloop/pkg/mailer"
	"github.com/sendloop/sendloop/pkg/mailmerge"
	"github.com/sendloop/sendloop/pkg/recipients"
)

// Manager stores session state in memory, keyed by token. Sessions are
// created lazily on first access, so a cleared or unknown token simply
// yields a fresh empty session.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*state
}

// state is the manager-internal mutable record behind Session copies.
type state struct {
	credential mailer.Credential
	recipients []recipients.Recipient
	template   mailmerge.Template
	format     mailer.BodyFormat
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*state)}
}

// Get returns a copy of the session for token, creating it if needed.
func (m *Manager) Get(token string) Session {
	m.mu.RLock()
	st, ok := m.sessions[token]
	if ok {
		s := m.copyOf(token, st)
		m.mu.RUnlock()
		return s
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok = m.sessions[token]; !ok {
		st = &state{}
		m.sessions[token] = st
	}
	return m.copyOf(token, st)
}

// copyOf builds a defensive copy; callers must hold at least mu.RLock.
func (m *Manager) copyOf(token string, st *state) Session {
	recs := make([]recipients.Recipient, len(st.recipients))
	copy(recs, st.recipients)
	return Session{
		Token:      token,
		Credential: st.credential,
		Recipients: recs,
		Template:   st.template,
		Format:     st.format,
	}
}

// SetCredential stores a credential for token.
func (m *Manager) SetCredential(token string, cred mailer.Credential) {
	m.mutate(token, func(st *state) { st.credential = cred })
}

// SetRecipients replaces the recipient list for token.
func (m *Manager) SetRecipients(token string, list []recipients.Recipient) {
	recs := make([]recipients.Recipient, len(list))
	copy(recs, list)
	m.mutate(token, func(st *state) { st.recipients = recs })
}

// SetTemplate stores the composed template and body format for token.
func (m *Manager) SetTemplate(token string, t mailmerge.Template, format mailer.BodyFormat) {
	m.mutate(token, func(st *state) {
		st.template = t
		st.format = format
	})
}

// Clear discards all state for token. The next access starts fresh.
func (m *Manager) Clear(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

func (m *Manager) mutate(token string, fn func(*state)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[token]
	if !ok {
		st = &state{}
		m.sessions[token] = st
	}
	fn(st)
}
