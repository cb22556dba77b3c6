// This file contains escape sequence recognition for the typing animator.

package monitor

import "regexp"

// csiPattern matches one CSI escape sequence at the start of input:
// ESC '[', parameter bytes 0x30-0x3F, intermediate bytes 0x20-0x2F, one
// final byte 0x40-0x7E. Colors, cursor motion and scroll region control
// all take this shape. Bare ESC and OSC sequences are not recognized and
// fall through as ordinary characters.
var csiPattern = regexp.MustCompile(`^\x1b\[[0-?]*[ -/]*[@-~]`)

// matchEscape returns the byte length of the escape sequence at the start
// of s, or 0 when s does not begin with one.
func matchEscape(s string) int {
	loc := csiPattern.FindStringIndex(s)
	if loc == nil {
		return 0
	}
	return loc[1]
}
