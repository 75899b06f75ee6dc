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

import "io"

// errWriter wraps the forward-only output sink. It collects the first
// write error and swallows all output afterwards, so the emitting code can
// stay free of error plumbing. The sink is never read from.
type errWriter struct {
	w      io.Writer // the sink to write to
	err    error     // first collected error
	length int       // collected length
}

// Write writes the content of p.
func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	var l int
	l, ew.err = ew.w.Write(p)
	ew.length += l
	return l, ew.err
}

// WriteString writes the content of s.
func (ew *errWriter) WriteString(s string) {
	if ew.err != nil {
		return
	}
	var l int
	l, ew.err = io.WriteString(ew.w, s)
	ew.length += l
}

// WriteStrings writes the content of sl.
func (ew *errWriter) WriteStrings(sl ...string) {
	for _, s := range sl {
		ew.WriteString(s)
	}
}

// WriteByte writes the single byte b.
func (ew *errWriter) WriteByte(b byte) error {
	_, err := ew.Write([]byte{b})
	return err
}
