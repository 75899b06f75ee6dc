//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Odense Bys Museer
//
// This file is part of DWS.
//
// DWS is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package writer

import "bytes"

// writeIndent emits a line break followed by the indentation text for the
// given nesting level. It is only called while the indented representation
// is active.
func (w *Writer) writeIndent(level int) {
	w.sink.WriteByte('\n')
	n := w.cfg.IndentWidth * level
	if n == 0 {
		return
	}
	if n > len(w.pad) || w.pad[0] != w.cfg.IndentChar {
		w.pad = bytes.Repeat([]byte{w.cfg.IndentChar}, n)
	}
	w.sink.Write(w.pad[:n])
}
