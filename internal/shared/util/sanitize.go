package util

import (
	"strings"
	"unicode"
)

const maxFileNameRunes = 128

// CleanFileName reduces a client-supplied upload name to a printable base
// name of at most 128 runes. Directory parts from either separator style are
// dropped; "", "." and ".." become "".
func CleanFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	n := 0
	for _, r := range strings.TrimSpace(name) {
		if !unicode.IsPrint(r) {
			continue
		}
		if n == maxFileNameRunes {
			break
		}
		b.WriteRune(r)
		n++
	}

	out := b.String()
	if out == "." || out == ".." {
		return ""
	}
	return out
}
