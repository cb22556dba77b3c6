// This file contains display width helpers for fixed terminal columns.

package monitor

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// visualWidth returns the number of terminal cells s occupies. Wide CJK
// runes count as two cells, combining marks as zero, ASCII as one.
func visualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// padToWidth fits s into exactly width cells: wider strings are truncated
// on a rune boundary, narrower ones are right-padded with spaces. A wide
// rune that would straddle the cut is dropped and the gap space-filled, so
// mixed-width course names keep the columns aligned.
func padToWidth(s string, width int) string {
	s = runewidth.Truncate(s, width, "")
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
