//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Odense Bys Museer
//
// This file is part of DWS.
//
// DWS is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odensebysmuseer/DWS/scalar"
	"github.com/odensebysmuseer/DWS/writer"
)

func TestRenderDocument(t *testing.T) {
	testcases := []struct {
		descr string
		src   string
		mode  writer.Mode
		exp   string
	}{
		{
			"compact round trip",
			`{ "a" : [ 1 , 2.5 , null , true , "x" ] , "b" : { "c" : "d" } }`,
			writer.ModeCompact,
			`{"a":[1,2.5,null,true,"x"],"b":{"c":"d"}}`,
		},
		{
			"indented",
			`{"a":1}`,
			writer.ModeIndented,
			"{\n  \"a\": 1\n}",
		},
		{
			"top-level scalar",
			`"hello"`,
			writer.ModeCompact,
			`"hello"`,
		},
		{
			"html fragment",
			`{"id":42}`,
			writer.ModeHTML,
			`<div class="iio-object" flex="100">` +
				`<div class="input-group-addon iio-property-name" flex="20">id</div>` +
				`<div class="iio-value" flex="80"><span class="iio-value-internal">42</span></div>` +
				`</div>`,
		},
		{
			"key-like strings inside arrays stay values",
			`{"a":["b","c"],"d":1}`,
			writer.ModeCompact,
			`{"a":["b","c"],"d":1}`,
		},
		{
			"big integer survives verbatim",
			`[9007199254740993]`,
			writer.ModeCompact,
			`[9007199254740993]`,
		},
	}
	for _, tc := range testcases {
		rf := renderFlags{quote: `"`, width: 2}
		var buf bytes.Buffer
		require.NoError(t,
			renderDocument(&buf, strings.NewReader(tc.src), tc.mode, &rf), tc.descr)
		assert.Equal(t, tc.exp, buf.String(), tc.descr)
	}
}

func TestRenderDocumentErrors(t *testing.T) {
	rf := renderFlags{quote: `""`, width: 2}
	var buf bytes.Buffer
	assert.ErrorIs(t,
		renderDocument(&buf, strings.NewReader(`1`), writer.ModeCompact, &rf),
		writer.ErrQuoteChar)

	rf = renderFlags{quote: `"`, width: 2}
	buf.Reset()
	assert.Error(t,
		renderDocument(&buf, strings.NewReader(`{"a":`), writer.ModeCompact, &rf),
		"truncated input must be reported")
}

func TestNumberValue(t *testing.T) {
	testcases := []struct {
		in   string
		kind scalar.Kind
		text string
	}{
		{"42", scalar.KindInt64, "42"},
		{"-7", scalar.KindInt64, "-7"},
		{"9223372036854775807", scalar.KindInt64, "9223372036854775807"},
		{"2.5", scalar.KindDecimal, "2.5"},
		{"-0.001", scalar.KindDecimal, "-0.001"},
		// Too large for int64, no exponent: the decimal keeps every digit.
		{"18446744073709551615", scalar.KindDecimal, "18446744073709551615"},
		// Exponent notation falls back to floating point.
		{"1e3", scalar.KindFloat64, "1000"},
		{"2.5e-1", scalar.KindFloat64, "0.25"},
	}
	for _, tc := range testcases {
		v, err := numberValue(json.Number(tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.kind, v.Kind(), tc.in)
		assert.Equal(t, tc.text, v.Text(), tc.in)
	}
}

func TestRenderFlagsMode(t *testing.T) {
	for in, exp := range map[string]writer.Mode{
		"compact":  writer.ModeCompact,
		"indented": writer.ModeIndented,
		"html":     writer.ModeHTML,
	} {
		rf := renderFlags{target: in}
		mode, err := rf.mode()
		require.NoError(t, err, in)
		assert.Equal(t, exp, mode, in)
	}
	rf := renderFlags{target: "yaml"}
	_, err := rf.mode()
	assert.Error(t, err)
}
