package aggregate

import (
	"net/url"
	"strings"
)

// ExtractDomain returns the network location of rawURL with a leading
// "www." removed. The location is kept as written, including any
// userinfo and port. It returns "" when rawURL has no host part.
//
// Only the authority has to be well formed: a stray "%" in the path or a
// non-numeric port does not hide the host.
//
//	ExtractDomain("https://www.example.com/a") == "example.com"
//	ExtractDomain("not a url") == ""
func ExtractDomain(rawURL string) string {
	rawURL = sanitizeURL(rawURL)

	var domain string
	if u, err := url.Parse(rawURL); err == nil {
		domain = u.Host
		if u.User != nil {
			domain = u.User.String() + "@" + domain
		}
	} else {
		domain = authority(rawURL)
	}
	return strings.TrimPrefix(domain, "www.")
}

// sanitizeURL drops leading control characters and spaces, and removes
// tabs and line breaks anywhere in s.
func sanitizeURL(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return r <= ' '
	})
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}

// authority returns the text between "//" and the first "/", "?" or "#".
// The "//" must open s or directly follow a scheme. An unclosed IPv6
// bracket yields "".
func authority(s string) string {
	if i := strings.Index(s, ":"); i > 0 && isScheme(s[:i]) {
		s = s[i+1:]
	}
	rest, ok := strings.CutPrefix(s, "//")
	if !ok {
		return ""
	}
	if end := strings.IndexAny(rest, "/?#"); end >= 0 {
		rest = rest[:end]
	}
	if strings.Contains(rest, "[") != strings.Contains(rest, "]") {
		return ""
	}
	return rest
}

// isScheme reports whether s is a valid URL scheme.
func isScheme(s string) bool {
	for i, r := range s {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9', r == '+', r == '-', r == '.':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return s != ""
}
