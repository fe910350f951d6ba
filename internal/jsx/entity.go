package jsx

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// entities maps reference names to their literal text.
var entities = map[string]string{
	"amp":  "&",
	"apos": "'",
	"quot": `"`,
	"lt":   "<",
	"gt":   ">",
	"nbsp": "\u00a0",
}

// Longest reference body we bother looking up, "&" and ";" excluded.
const maxEntityLen = 10

// DecodeEntities resolves named (&amp;, &apos;, ...) and numeric (&#39;,
// &#x27;) character references in a single pass. Unknown or unterminated
// references are left untouched.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		i := strings.IndexByte(s, '&')
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		s = s[i:]
		if lit, n, ok := entityAt(s); ok {
			b.WriteString(lit)
			s = s[n:]
			continue
		}
		b.WriteByte('&')
		s = s[1:]
	}
	return b.String()
}

// entityAt decodes the reference at the start of s, returning the literal
// and the number of bytes consumed.
func entityAt(s string) (string, int, bool) {
	limit := len(s)
	if limit > maxEntityLen+2 {
		limit = maxEntityLen + 2
	}
	end := strings.IndexByte(s[:limit], ';')
	if end < 2 {
		return "", 0, false
	}
	name := s[1:end]
	if name[0] == '#' {
		r, ok := numericRef(name[1:])
		if !ok {
			return "", 0, false
		}
		return string(r), end + 1, true
	}
	if lit, ok := entities[name]; ok {
		return lit, end + 1, true
	}
	return "", 0, false
}

func numericRef(digits string) (rune, bool) {
	base := 10
	if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
		base = 16
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}
