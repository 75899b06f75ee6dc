//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Odense Bys Museer
//
// This file is part of DWS.
//
// DWS is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package strfun provides string functions for emitting representation text.
package strfun

import "io"

var (
	escBackslash = []byte{'\\', '\\'}
	escDQuote    = []byte{'\\', '"'}
	escSQuote    = []byte{'\\', '\''}
	escNewline   = []byte{'\\', 'n'}
	escTab       = []byte{'\\', 't'}
	escCr        = []byte{'\\', 'r'}
	escBackspace = []byte{'\\', 'b'}
	escFormfeed  = []byte{'\\', 'f'}
	hexDigits    = []byte("0123456789ABCDEF")
)

// JSONEscape writes s to w, escaping every character that may not appear
// inside a JSON string literal bounded by the given quote character. Only
// the active quote character is escaped, so a single-quoted literal keeps
// its double quotes verbatim and vice versa. A zero quote means there is
// no bounding quote: backslashes and control characters are still escaped,
// everything else passes through.
func JSONEscape(w io.Writer, s string, quote byte) {
	last := 0
	for i, ch := range s {
		var esc []byte
		switch ch {
		case '\\':
			esc = escBackslash
		case '"':
			if quote != '"' {
				continue
			}
			esc = escDQuote
		case '\'':
			if quote != '\'' {
				continue
			}
			esc = escSQuote
		case '\n':
			esc = escNewline
		case '\t':
			esc = escTab
		case '\r':
			esc = escCr
		case '\b':
			esc = escBackspace
		case '\f':
			esc = escFormfeed
		default:
			if ch >= ' ' {
				continue
			}
			var u [6]byte
			u[0], u[1], u[2], u[3] = '\\', 'u', '0', '0'
			u[4] = hexDigits[ch>>4]
			u[5] = hexDigits[ch&0xF]
			esc = u[:]
		}
		io.WriteString(w, s[last:i])
		w.Write(esc)
		last = i + 1
	}
	io.WriteString(w, s[last:])
}
