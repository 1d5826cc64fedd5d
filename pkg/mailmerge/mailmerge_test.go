package mailmerge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sendloop/sendloop/pkg/mailmerge"
	"github.com/sendloop/sendloop/pkg/recipients"
)

func TestRender_SubstitutesAllTokens(t *testing.T) {
	t.Parallel()

	tmpl := mailmerge.Template{
		Subject: "Hi {{name}}",
		Body:    "Hello {{name}}! Your address is {{email}}. Bye {{name}}.",
	}
	rec := recipients.Recipient{Name: "Ann", Address: "a@x.com"}

	msg := mailmerge.Render(tmpl, rec)

	require.Equal(t, "Hi Ann", msg.Subject)
	require.Equal(t, "Hello Ann! Your address is a@x.com. Bye Ann.", msg.Body)
}

func TestRender_UnknownTokenLeftVerbatim(t *testing.T) {
	t.Parallel()

	tmpl := mailmerge.Template{Subject: "{{company}} news", Body: "Dear {{name}}, {{unknown}}"}
	rec := recipients.Recipient{Name: "Bo", Address: "b@x.com"}

	msg := mailmerge.Render(tmpl, rec)

	require.Equal(t, "{{company}} news", msg.Subject)
	require.Equal(t, "Dear Bo, {{unknown}}", msg.Body)
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	tmpl := mailmerge.Template{Subject: "Hi {{name}}", Body: "Hello {{name}}!"}
	rec := recipients.Recipient{Name: "Ann", Address: "a@x.com"}

	first := mailmerge.Render(tmpl, rec)
	second := mailmerge.Render(tmpl, rec)

	require.Equal(t, first, second)
}

func TestPreview_UsesFirstRecipient(t *testing.T) {
	t.Parallel()

	tmpl := mailmerge.Template{Subject: "Hi {{name}}", Body: "Hello {{name}}!"}
	list := []recipients.Recipient{
		{Name: "Ann", Address: "a@x.com"},
		{Name: "Bo", Address: "b@x.com"},
	}

	msg := mailmerge.Preview(tmpl, list)

	require.Equal(t, "Hi Ann", msg.Subject)
	require.Equal(t, "Hello Ann!", msg.Body)
}

func TestPreview_EmptyListFallsBackToSample(t *testing.T) {
	t.Parallel()

	tmpl := mailmerge.Template{Subject: "Hi {{name}}", Body: "Hello {{name}}!"}

	msg := mailmerge.Preview(tmpl, nil)

	require.Equal(t, "Hi Sample Name", msg.Subject)
	require.Equal(t, "Hello Sample Name!", msg.Body)
}

func TestTemplate_IsComplete(t *testing.T) {
	t.Parallel()

	require.True(t, mailmerge.Template{Subject: "s", Body: "b"}.IsComplete())
	require.False(t, mailmerge.Template{Subject: "s"}.IsComplete())
	require.False(t, mailmerge.Template{Body: "b"}.IsComplete())
	require.False(t, mailmerge.Template{Subject: "  ", Body: "b"}.IsComplete())
}
