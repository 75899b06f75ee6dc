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

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odensebysmuseer/DWS/nesting"
)

func TestStreamEncoderMatchesOneShot(t *testing.T) {
	lengths := []int{0, 1, 2, 3, 4, 5, 767, 768, 769, 3100}
	splits := []int{1, 2, 3, 7, 100, 768, 1000}
	for _, n := range lengths {
		payload := make([]byte, n)
		for i := range payload {
			payload[i] = byte(i * 31)
		}
		exp := base64.StdEncoding.EncodeToString(payload)
		for _, split := range splits {
			var buf bytes.Buffer
			enc := newStreamEncoder(&errWriter{w: &buf})
			for off := 0; off < len(payload); off += split {
				end := off + split
				if end > len(payload) {
					end = len(payload)
				}
				enc.encode(payload[off:end])
			}
			enc.flush()
			assert.Equal(t, exp, buf.String(), "length %d, split %d", n, split)
		}
	}
}

func TestStreamEncoderNoStateLeak(t *testing.T) {
	var buf bytes.Buffer
	enc := newStreamEncoder(&errWriter{w: &buf})

	// A flushed one-byte remainder must not bleed into the next value.
	enc.encode([]byte{0xff})
	enc.flush()
	first := buf.String()
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0xff}), first)

	buf.Reset()
	enc.encode([]byte{1, 2, 3})
	enc.flush()
	assert.Equal(t, "AQID", buf.String())
}

func TestStreamEncoderFlushEmpty(t *testing.T) {
	var buf bytes.Buffer
	enc := newStreamEncoder(&errWriter{w: &buf})
	enc.flush()
	assert.Zero(t, buf.Len())
}

func TestEmitEndPanicsOnCorruptState(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, ModeCompact)
	assert.Panics(t, func() { w.emitEnd(nesting.ContainerNone) })
}
