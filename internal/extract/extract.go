// Package extract parses free-form text into a deduplicated set of email
// addresses.
package extract

import (
	"os"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Emails scans text for email addresses and returns them lowercased,
// deduplicated, in first-seen order. Input with no matches yields an empty
// slice; callers surface that as a "no emails found" condition.
func Emails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.ToLower(m)
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// FromFile reads a text or CSV file and extracts email addresses from its
// contents.
func FromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "extract: read %s", path)
	}
	return Emails(string(data)), nil
}
