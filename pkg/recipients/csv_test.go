package recipients_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sendloop/sendloop/pkg/recipients"
)

func TestParseCSV_ValidRows(t *testing.T) {
	t.Parallel()

	in := "Ann,a@x.com\nBo,b@x.com\n"

	res, err := recipients.ParseCSV(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, []recipients.Recipient{
		{Name: "Ann", Address: "a@x.com"},
		{Name: "Bo", Address: "b@x.com"},
	}, res.Recipients)
	require.Empty(t, res.Skipped)
}

func TestParseCSV_HeaderRowSilentlyIgnored(t *testing.T) {
	t.Parallel()

	// A literal header row is neither an error nor a recipient.
	in := "name,email\nAnn,a@x.com\nNAME,EMAIL\n"

	res, err := recipients.ParseCSV(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, []recipients.Recipient{{Name: "Ann", Address: "a@x.com"}}, res.Recipients)
	require.Empty(t, res.Skipped)
}

func TestParseCSV_InvalidRowsSkippedNotFatal(t *testing.T) {
	t.Parallel()

	in := "Ann,a@x.com\n,missing-name@x.com\nBo,no-at-sign\nshortrow\nCy,c@x.com\n"

	res, err := recipients.ParseCSV(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, []recipients.Recipient{
		{Name: "Ann", Address: "a@x.com"},
		{Name: "Cy", Address: "c@x.com"},
	}, res.Recipients)
	require.Len(t, res.Skipped, 3)
}

func TestParseCSV_NoValidRecipients(t *testing.T) {
	t.Parallel()

	_, err := recipients.ParseCSV(strings.NewReader("name,email\n,\n"))
	require.ErrorIs(t, err, recipients.ErrNoRecipients)
}

func TestParseCSV_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	res, err := recipients.ParseCSV(strings.NewReader(" Ann , a@x.com \n"))
	require.NoError(t, err)
	require.Equal(t, []recipients.Recipient{{Name: "Ann", Address: "a@x.com"}}, res.Recipients)
}
