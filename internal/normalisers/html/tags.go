package html

import (
	"regexp"
	"strings"
)

// spanTag matches any <span ...> opener or </span> closer.
var spanTag = regexp.MustCompile(`(?i)<(/?)span(?:\s[^<>]*)?>`)

// rewrapElements finds every opener matched by open, pairs it with its
// balanced closer (tags matched by tag, group 1 holding "/" for closers)
// and replaces the opener with openRepl and the closer with closeRepl.
// Openers without a closer are left untouched.
func rewrapElements(s string, open, tag *regexp.Regexp, openRepl, closeRepl string) string {
	pos := 0
	for pos < len(s) {
		loc := open.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		closeStart, closeEnd, ok := matchingClose(s, end, tag)
		if !ok {
			pos = end
			continue
		}
		var b strings.Builder
		b.Grow(len(s))
		b.WriteString(s[:start])
		b.WriteString(openRepl)
		b.WriteString(s[end:closeStart])
		b.WriteString(closeRepl)
		b.WriteString(s[closeEnd:])
		s = b.String()
		pos = start + len(openRepl)
	}
	return s
}

// matchingClose scans s from offset for the closer that balances an
// already-open element.
func matchingClose(s string, offset int, tag *regexp.Regexp) (int, int, bool) {
	depth := 1
	for _, m := range tag.FindAllStringSubmatchIndex(s[offset:], -1) {
		raw := s[offset+m[0] : offset+m[1]]
		switch {
		case m[3] > m[2]:
			depth--
		case strings.HasSuffix(raw, "/>"):
			continue
		default:
			depth++
		}
		if depth == 0 {
			return offset + m[0], offset + m[1], true
		}
	}
	return 0, 0, false
}
