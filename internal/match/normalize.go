package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lower-cases s and drops the separators '_', '-' and ' ',
// so "order_id", "OrderID" and "orderId" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
