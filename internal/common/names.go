package common

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the String() value of unrecognised enum members.
const UnknownStr = "unknown"

// UpperFirst returns s with its first rune upper-cased.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst returns s with its leading upper-case run lower-cased, so that
// "ID" becomes "id" and "HTTPClient" becomes "httpClient".
func LowerFirst(s string) string {
	runes := []rune(s)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	if n == 0 {
		return s
	}

	// Keep the upper-case letter that starts the next word.
	if n > 1 && n < len(runes) {
		n--
	}

	for i := range n {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// SafeIdent returns name, suffixed with an underscore when it is a Go keyword.
func SafeIdent(name string) string {
	if token.IsKeyword(name) {
		return name + "_"
	}

	return name
}

// SnakeCase converts a Go identifier to snake_case, keeping acronyms together:
// "HTTPRequest" becomes "http_request".
func SnakeCase(s string) string {
	runes := []rune(s)

	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])

			if i > 0 && runes[i-1] != '_' && (prevLower || (prevUpper && nextLower)) {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
