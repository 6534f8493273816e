package model

import "strings"

// Slugify derives a URL-safe join key from a display name: lowercased,
// whitespace runs collapsed to a single hyphen, anything outside
// [a-z0-9-] stripped.
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastHyphen := false
	for _, r := range lower {
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			b.WriteRune(r)
			lastHyphen = r == '-'
		}
	}
	return strings.Trim(b.String(), "-")
}
