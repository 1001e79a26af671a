package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmails(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty_input",
			text: "",
			want: []string{},
		},
		{
			name: "no_matches",
			text: "nothing to see here, not even an at-sign worth parsing",
			want: []string{},
		},
		{
			name: "duplicates_and_garbage",
			text: "a@b.com, a@b.com; bad@@x",
			want: []string{"a@b.com"},
		},
		{
			name: "case_insensitive_dedupe",
			text: "Jane.Doe@Example.com jane.doe@example.com",
			want: []string{"jane.doe@example.com"},
		},
		{
			name: "first_seen_order",
			text: "c@z.io b@y.io a@x.io b@y.io",
			want: []string{"c@z.io", "b@y.io", "a@x.io"},
		},
		{
			name: "csv_lines",
			text: "name,email\nJane,jane@acme.com\nBob,bob+test@dev.acme.co.uk\n",
			want: []string{"jane@acme.com", "bob+test@dev.acme.co.uk"},
		},
		{
			name: "embedded_in_prose",
			text: "reach out to ops%lead@mid-market.com or ping sales_1@big.corp.net today",
			want: []string{"ops%lead@mid-market.com", "sales_1@big.corp.net"},
		},
		{
			name: "tld_too_short",
			text: "short@tld.a",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Emails(tt.text)
			assert.Equal(t, tt.want, got)

			// Every returned string must itself re-match the pattern.
			for _, e := range got {
				assert.Regexp(t, emailPattern, e)
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emails.csv")
	require.NoError(t, os.WriteFile(path, []byte("a@b.com\nc@d.org\na@b.com\n"), 0o600))

	got, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.com", "c@d.org"}, got)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract: read")
}
