package keyenc

import "strconv"

// Compose renders a parsed capability plus a modifier parameter as the
// final byte sequence. Tilde-form templates keep their numeric code:
//
//	ESC [ N ; P ~
//
// Letter-form templates are always emitted as
//
//	ESC [ 1 ; P c
//
// including SS3 bases: SS3 has no parameter slot, so xterm reports any
// modified key through CSI.
func Compose(parsed ParsedCapability, param int) []byte {
	buf := make([]byte, 0, 8)
	buf = append(buf, 0x1b, '[')
	if parsed.Final == '~' {
		buf = strconv.AppendInt(buf, int64(parsed.Num), 10)
	} else {
		buf = append(buf, '1')
	}
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(param), 10)
	buf = append(buf, parsed.Final)
	return buf
}
