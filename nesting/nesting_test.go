//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Odense Bys Museer
//
// This file is part of DWS.
//
// DWS is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package nesting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odensebysmuseer/DWS/nesting"
)

func advanceAll(t *testing.T, s *nesting.Stack, tokens ...nesting.Token) {
	t.Helper()
	for _, tok := range tokens {
		_, err := s.Advance(tok)
		require.NoError(t, err, "token %v", tok)
	}
}

func TestLegalDocument(t *testing.T) {
	s := nesting.NewStack()
	advanceAll(t, s,
		nesting.TokenStartObject,
		nesting.TokenPropertyName,
		nesting.TokenStartArray,
		nesting.TokenValue,
		nesting.TokenStartConstructor,
		nesting.TokenValue,
		nesting.TokenEndConstructor,
		nesting.TokenEndArray,
		nesting.TokenPropertyName,
		nesting.TokenValue,
		nesting.TokenEndObject,
	)
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, nesting.StateFinished, s.State())
}

func TestViolations(t *testing.T) {
	testcases := []struct {
		descr  string
		prefix []nesting.Token
		bad    nesting.Token
	}{
		{"property name at top level", nil, nesting.TokenPropertyName},
		{"end object at top level", nil, nesting.TokenEndObject},
		{"end array at top level", nil, nesting.TokenEndArray},
		{"end constructor at top level", nil, nesting.TokenEndConstructor},
		{
			"second top-level value",
			[]nesting.Token{nesting.TokenValue},
			nesting.TokenValue,
		},
		{
			"value directly inside object",
			[]nesting.Token{nesting.TokenStartObject},
			nesting.TokenValue,
		},
		{
			"property name inside array",
			[]nesting.Token{nesting.TokenStartArray},
			nesting.TokenPropertyName,
		},
		{
			"property name inside constructor",
			[]nesting.Token{nesting.TokenStartConstructor},
			nesting.TokenPropertyName,
		},
		{
			"property name after property name",
			[]nesting.Token{nesting.TokenStartObject, nesting.TokenPropertyName},
			nesting.TokenPropertyName,
		},
		{
			"end array closing an object",
			[]nesting.Token{nesting.TokenStartObject},
			nesting.TokenEndArray,
		},
		{
			"end object closing an array",
			[]nesting.Token{nesting.TokenStartArray},
			nesting.TokenEndObject,
		},
		{
			"end object with pending property",
			[]nesting.Token{nesting.TokenStartObject, nesting.TokenPropertyName},
			nesting.TokenEndObject,
		},
	}
	for _, tc := range testcases {
		s := nesting.NewStack()
		advanceAll(t, s, tc.prefix...)
		depth := s.Depth()
		state := s.State()

		_, err := s.Advance(tc.bad)
		require.Error(t, err, tc.descr)
		var verr *nesting.ViolationError
		require.ErrorAs(t, err, &verr, tc.descr)
		assert.Equal(t, tc.bad, verr.Token, tc.descr)

		// A violation must leave the stack untouched.
		assert.Equal(t, depth, s.Depth(), tc.descr)
		assert.Equal(t, state, s.State(), tc.descr)
	}
}

func TestNeutralTokens(t *testing.T) {
	s := nesting.NewStack()
	for _, tok := range []nesting.Token{
		nesting.TokenComment, nesting.TokenWhitespace, nesting.TokenRaw,
	} {
		act, err := s.Advance(tok)
		require.NoError(t, err)
		assert.False(t, act.Delimiter)
		assert.Equal(t, nesting.StateStart, s.State())
	}
	// Still legal after the document finished.
	advanceAll(t, s, nesting.TokenValue)
	_, err := s.Advance(nesting.TokenComment)
	require.NoError(t, err)
	assert.Equal(t, nesting.StateFinished, s.State())
}

func TestActions(t *testing.T) {
	s := nesting.NewStack()
	testcases := []struct {
		tok nesting.Token
		exp nesting.Action
	}{
		{nesting.TokenStartObject, nesting.Action{}},
		{nesting.TokenPropertyName, nesting.Action{Break: true, Level: 1}},
		{nesting.TokenStartArray, nesting.Action{KeySpace: true, Level: 1}},
		{nesting.TokenValue, nesting.Action{Break: true, Level: 2}},
		{nesting.TokenStartObject, nesting.Action{Delimiter: true, Break: true, Level: 2}},
		{nesting.TokenPropertyName, nesting.Action{Break: true, Level: 3}},
		{nesting.TokenValue, nesting.Action{KeySpace: true, Level: 3}},
		{nesting.TokenEndObject, nesting.Action{Break: true, Level: 2, Closed: nesting.ContainerObject}},
		{nesting.TokenEndArray, nesting.Action{Break: true, Level: 1, Closed: nesting.ContainerArray}},
		{nesting.TokenEndObject, nesting.Action{Break: true, Level: 0, Closed: nesting.ContainerObject}},
	}
	for i, tc := range testcases {
		act, err := s.Advance(tc.tok)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, tc.exp, act, "step %d: token %v", i, tc.tok)
	}
}

func TestEmptyContainerActions(t *testing.T) {
	s := nesting.NewStack()
	advanceAll(t, s, nesting.TokenStartArray)
	act, err := s.Advance(nesting.TokenEndArray)
	require.NoError(t, err)
	// No break directly after an opening delimiter with nothing inside.
	assert.False(t, act.Break)
	assert.Equal(t, nesting.ContainerArray, act.Closed)
}
