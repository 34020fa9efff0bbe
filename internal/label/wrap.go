package label

import (
	"strings"
	"unicode"

	"aas-refmap/internal/common"
)

// Wrap soft-wraps every line of text at maxColumn runes.
// A break at a space drops the space; a break at any other separator keeps it
// at the end of the line. Without a separator inside the window the line is
// cut exactly at maxColumn. maxColumn <= 0 disables wrapping.
func Wrap(text string, maxColumn int) string {
	if maxColumn <= 0 || text == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine([]rune(line), maxColumn)
	}

	return strings.Join(lines, "\n")
}

func wrapLine(rest []rune, maxColumn int) string {
	var b strings.Builder

	for len(rest) > maxColumn {
		cut, next := maxColumn, maxColumn

		if p, ok := nearestBreak(rest, maxColumn, maxColumn/2); ok {
			if unicode.IsSpace(rest[p]) {
				cut, next = p, p+1
				for next < len(rest) && unicode.IsSpace(rest[next]) {
					next++
				}
			} else {
				cut, next = p+1, p+1
			}
		}

		b.WriteString(string(rest[:cut]))
		b.WriteByte('\n')

		rest = rest[next:]
	}

	b.WriteString(string(rest))

	return b.String()
}

// nearestBreak finds the separator closest to nominal within ±window.
// On a tie the earlier position wins. Position 0 and the last rune are never
// chosen, so a break always leaves text on both sides.
func nearestBreak(runes []rune, nominal, window int) (int, bool) {
	lo := max(1, nominal-window)
	hi := min(len(runes)-2, nominal+window)

	for d := 0; d <= window; d++ {
		for _, p := range []int{nominal - d, nominal + d} {
			if common.InRange(lo, p, hi) && isSeparator(runes[p]) {
				return p, true
			}
		}
	}

	return 0, false
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
