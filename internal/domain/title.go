package domain

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// headingPrefix is the marker for a top-level heading line
const headingPrefix = "# "

// ExtractTitle returns the text of the first top-level heading in content.
// Only lines starting with "# " count; leading and trailing '#' characters
// and surrounding whitespace are stripped. Returns "" when there is none.
func ExtractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, headingPrefix) {
			return strings.TrimSpace(strings.Trim(line, "#"))
		}
	}
	return ""
}

// Fingerprint returns the change-detection digest of text as upper-case hex.
// It is not meant to be collision resistant.
func Fingerprint(text string) string {
	sum := md5.Sum([]byte(text))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
