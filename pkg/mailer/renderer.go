package mailer

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// BodyFormat declares how a composed body should be interpreted.
type BodyFormat string

const (
	// FormatHTML treats the body as HTML and sanitizes it before sending.
	FormatHTML BodyFormat = "html"

	// FormatMarkdown converts the body from markdown to HTML.
	FormatMarkdown BodyFormat = "markdown"
)

// Valid reports whether the format is one of the supported values.
// The empty string is accepted and treated as FormatHTML.
func (f BodyFormat) Valid() bool {
	return f == "" || f == FormatHTML || f == FormatMarkdown
}

// BodyRenderer turns a composed body into sanitized HTML plus a plain
// text alternative. Safe for concurrent use.
type BodyRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewBodyRenderer creates a renderer with a UGC sanitization policy.
// Operator-composed bodies are untrusted input: whatever arrives through
// the compose surface is stripped down to safe markup before delivery.
func NewBodyRenderer() *BodyRenderer {
	return &BodyRenderer{
		md:     goldmark.New(),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render produces the HTML and plain text variants of body.
// For FormatHTML the body is sanitized as-is and the text variant is left
// empty (the provider derives one). For FormatMarkdown the body is
// converted first and the raw markdown doubles as the text variant.
func (r *BodyRenderer) Render(body string, format BodyFormat) (html, text string, err error) {
	switch format {
	case "", FormatHTML:
		return r.policy.Sanitize(body), "", nil
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(body), &buf); err != nil {
			return "", "", fmt.Errorf("%w: %w", ErrUnknownFormat, err)
		}
		return r.policy.Sanitize(buf.String()), body, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
