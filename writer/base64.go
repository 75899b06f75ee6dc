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

import "encoding/base64"

// b64Chunk is the number of input bytes encoded per sink write. It must be
// a multiple of three.
const b64Chunk = 768

// streamEncoder encodes byte sequences incrementally. It keeps at most two
// pending bytes between calls and uses constant memory regardless of the
// payload size. One instance is shared by all byte-sequence values of a
// writer; flush resets it, so no state leaks from one value into the next.
type streamEncoder struct {
	w    *errWriter
	pend [3]byte
	n    int
}

func newStreamEncoder(w *errWriter) *streamEncoder {
	return &streamEncoder{w: w}
}

// encode consumes p, emitting four output characters for every completed
// group of three input bytes. An incomplete trailing group stays pending.
func (e *streamEncoder) encode(p []byte) {
	if e.n > 0 {
		for e.n < 3 && len(p) > 0 {
			e.pend[e.n] = p[0]
			e.n++
			p = p[1:]
		}
		if e.n < 3 {
			return
		}
		var quad [4]byte
		base64.StdEncoding.Encode(quad[:], e.pend[:])
		e.w.Write(quad[:])
		e.n = 0
	}
	var out [b64Chunk / 3 * 4]byte
	for len(p) >= 3 {
		n := len(p) / 3 * 3
		if n > b64Chunk {
			n = b64Chunk
		}
		base64.StdEncoding.Encode(out[:n/3*4], p[:n])
		e.w.Write(out[:n/3*4])
		p = p[n:]
	}
	copy(e.pend[:], p)
	e.n = len(p)
}

// flush pads and emits a pending one- or two-byte remainder and resets the
// accumulator.
func (e *streamEncoder) flush() {
	if e.n == 0 {
		return
	}
	var quad [4]byte
	base64.StdEncoding.Encode(quad[:], e.pend[:e.n])
	e.w.Write(quad[:])
	e.n = 0
}
