package script

import "strings"

// safeValue holds the characters allowed in an unquoted value, beyond
// letters and digits. '=' is safe because the whole name=value argument is
// already one shell word.
const safeValue = "._-/:@%+,="

func safe(value string) bool {
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune(safeValue, r):
		default:
			return false
		}
	}
	return true
}

// quote renders value for use in "nvram set name=<value>". Empty and safe
// values pass through bare; anything else is single-quoted with embedded
// single quotes escaped as '\''.
func quote(value string) string {
	if safe(value) {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
