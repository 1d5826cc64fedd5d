package recipients

import "strings"

// Recipient is a single validated list entry.
// Immutable once part of an accepted list.
type Recipient struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Validate reports whether the recipient is acceptable:
// both fields non-empty after trimming and the address contains "@".
func (r Recipient) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	addr := strings.TrimSpace(r.Address)
	if addr == "" {
		return ErrEmptyAddress
	}
	if !strings.Contains(addr, "@") {
		return ErrInvalidAddress
	}
	return nil
}

// Normalize returns a copy with both fields trimmed.
func (r Recipient) Normalize() Recipient {
	return Recipient{
		Name:    strings.TrimSpace(r.Name),
		Address: strings.TrimSpace(r.Address),
	}
}

// Filter returns the valid entries of list, normalized, preserving order.
// Invalid entries are dropped silently; used for bulk updates where the
// caller already knows the row count.
func Filter(list []Recipient) []Recipient {
	out := make([]Recipient, 0, len(list))
	for _, r := range list {
		r = r.Normalize()
		if r.Validate() == nil {
			out = append(out, r)
		}
	}
	return out
}
