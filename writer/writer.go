//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Odense Bys Museer
//
// This file is part of DWS.
//
// DWS is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package writer implements a forward-only, stateful writer that renders a
// stream of structural write operations either as canonical JSON text,
// compact or indented, or as the HTML fragment tree of the data editor.
// Both representations carry the same logical structure; the active
// representation may be switched between any two calls.
//
// A Writer is not safe for concurrent use: representation mode, quoting
// configuration, and the base64 accumulator are shared mutable state.
package writer

import (
	"errors"
	"fmt"
	"io"

	"github.com/odensebysmuseer/DWS/nesting"
	"github.com/odensebysmuseer/DWS/scalar"
	"github.com/odensebysmuseer/DWS/strfun"
)

// Errors reported by the writer itself. Structural violations come from
// the nesting package and are propagated unmodified; sink errors are
// collected and surfaced unmodified.
var (
	ErrClosed     = errors.New("writer is closed")
	ErrWhitespace = errors.New("whitespace text contains non-whitespace characters")
)

// Writer is the top-level façade. Create one with New.
type Writer struct {
	sink      errWriter
	stack     *nesting.Stack
	cfg       Config
	mode      Mode
	quoteChar byte // active quote, zero while the HTML representation is active
	quoteName bool // active name quoting
	closeOpen bool
	pad       []byte         // cached indentation text
	b64       *streamEncoder // created on first byte-sequence value
	closed    bool
}

// New creates a writer that emits to w in the given mode, using the
// default configuration. The quoting reconciliation runs for the initial
// mode as well.
func New(w io.Writer, mode Mode) *Writer {
	wr := &Writer{
		sink:      errWriter{w: w},
		stack:     nesting.NewStack(),
		cfg:       DefaultConfig(),
		closeOpen: true,
	}
	wr.SetMode(mode)
	return wr
}

// SetMode switches the active representation. The active quoting is
// reconciled immediately, on every assignment, so the writer can be
// toggled freely between representations mid-document without stale
// quoting state leaking into the next call.
func (w *Writer) SetMode(m Mode) {
	w.mode = m
	w.applyQuoting()
}

// Mode returns the active representation.
func (w *Writer) Mode() Mode { return w.mode }

// Depth returns the number of currently open containers.
func (w *Writer) Depth() int { return w.stack.Depth() }

// Length returns the number of bytes written to the sink so far.
func (w *Writer) Length() int { return w.sink.length }

// applyQuoting recomputes the active quoting from mode and configuration.
// The HTML representation never quotes, regardless of configuration.
func (w *Writer) applyQuoting() {
	if w.mode == ModeHTML {
		w.quoteChar = 0
		w.quoteName = false
		return
	}
	w.quoteChar = w.cfg.QuoteChar
	w.quoteName = w.cfg.QuoteName
}

// begin validates the token against the nesting context and, if legal,
// emits the delimiter and layout text owed before it. Nothing is written
// for an illegal token.
func (w *Writer) begin(t nesting.Token) (nesting.Action, error) {
	if w.closed {
		return nesting.Action{}, ErrClosed
	}
	act, err := w.stack.Advance(t)
	if err != nil {
		return act, err
	}
	switch w.mode {
	case ModeCompact:
		if act.Delimiter {
			w.sink.WriteByte(',')
		}
	case ModeIndented:
		if act.Delimiter {
			w.sink.WriteByte(',')
		}
		if act.KeySpace {
			w.sink.WriteByte(' ')
		}
		if act.Break {
			w.writeIndent(act.Level)
		}
	case ModeHTML:
		// Nested elements convey the structure; punctuation is suppressed.
	}
	return act, nil
}

// WriteStartObject opens an object.
func (w *Writer) WriteStartObject() error {
	if _, err := w.begin(nesting.TokenStartObject); err != nil {
		return err
	}
	if w.mode == ModeHTML {
		w.sink.WriteString(htmlStartObject)
	} else {
		w.sink.WriteByte('{')
	}
	return w.sink.err
}

// WriteStartArray opens an array.
func (w *Writer) WriteStartArray() error {
	if _, err := w.begin(nesting.TokenStartArray); err != nil {
		return err
	}
	if w.mode == ModeHTML {
		w.sink.WriteString(htmlStartArray)
	} else {
		w.sink.WriteByte('[')
	}
	return w.sink.err
}

// WriteStartConstructor opens a constructor with the given name. The HTML
// representation suppresses constructors entirely; their arguments are
// still emitted.
func (w *Writer) WriteStartConstructor(name string) error {
	if _, err := w.begin(nesting.TokenStartConstructor); err != nil {
		return err
	}
	if w.mode != ModeHTML {
		w.sink.WriteStrings("new ", name, "(")
	}
	return w.sink.err
}

// WriteEndObject closes the innermost object.
func (w *Writer) WriteEndObject() error { return w.writeEnd(nesting.TokenEndObject) }

// WriteEndArray closes the innermost array.
func (w *Writer) WriteEndArray() error { return w.writeEnd(nesting.TokenEndArray) }

// WriteEndConstructor closes the innermost constructor.
func (w *Writer) WriteEndConstructor() error { return w.writeEnd(nesting.TokenEndConstructor) }

func (w *Writer) writeEnd(t nesting.Token) error {
	act, err := w.begin(t)
	if err != nil {
		return err
	}
	w.emitEnd(act.Closed)
	return w.sink.err
}

// emitEnd writes the closing delimiter for the given container. A
// container kind without a delimiter means the nesting state is corrupt;
// that is a defect, not bad input, and cannot be recovered from.
func (w *Writer) emitEnd(c nesting.Container) {
	switch c {
	case nesting.ContainerObject:
		if w.mode == ModeHTML {
			w.sink.WriteString(htmlEnd)
		} else {
			w.sink.WriteByte('}')
		}
	case nesting.ContainerArray:
		if w.mode == ModeHTML {
			w.sink.WriteString(htmlEnd)
		} else {
			w.sink.WriteByte(']')
		}
	case nesting.ContainerConstructor:
		if w.mode != ModeHTML {
			w.sink.WriteByte(')')
		}
	default:
		panic(fmt.Sprintf("writer: no end delimiter for container %v", c))
	}
}

// WritePropertyName writes the name of the next property.
func (w *Writer) WritePropertyName(name string) error {
	if _, err := w.begin(nesting.TokenPropertyName); err != nil {
		return err
	}
	if w.mode == ModeHTML {
		w.htmlPropertyName(name)
		return w.sink.err
	}
	if w.quoteName {
		w.sink.WriteByte(w.quoteChar)
		strfun.JSONEscape(&w.sink, name, w.quoteChar)
		w.sink.WriteByte(w.quoteChar)
	} else {
		strfun.JSONEscape(&w.sink, name, w.quoteChar)
	}
	w.sink.WriteByte(':')
	return w.sink.err
}

// WriteValue writes a scalar value with the default layout hint.
func (w *Writer) WriteValue(v scalar.Value) error {
	return w.WriteValueLayout(v, HintValueCell)
}

// WriteValueLayout writes a scalar value using the given layout hint. The
// hint affects only the HTML markup of this one node.
func (w *Writer) WriteValueLayout(v scalar.Value, hint LayoutHint) error {
	if _, err := w.begin(nesting.TokenValue); err != nil {
		return err
	}
	switch v.Kind() {
	case scalar.KindString, scalar.KindChar:
		w.writeEscaped(v.Text(), hint)
	case scalar.KindBytes:
		w.writeByteSeq(v.ByteSeq())
	default:
		w.writeCanonical(v, hint)
	}
	return w.sink.err
}

// writeEscaped emits a string value through the string escaper. The HTML
// representation wraps the escaped text in a value container.
func (w *Writer) writeEscaped(s string, hint LayoutHint) {
	if w.mode == ModeHTML {
		w.htmlValueOpen(hint)
		strfun.JSONEscape(&w.sink, s, w.quoteChar)
		w.sink.WriteString(htmlValueClose)
		return
	}
	w.sink.WriteByte(w.quoteChar)
	strfun.JSONEscape(&w.sink, s, w.quoteChar)
	w.sink.WriteByte(w.quoteChar)
}

// writeByteSeq streams a byte sequence through the base64 encoder, bounded
// by the active quote character. The HTML representation deliberately does
// not wrap the encoded text in the generic value container.
func (w *Writer) writeByteSeq(p []byte) {
	if w.quoteChar != 0 {
		w.sink.WriteByte(w.quoteChar)
	}
	if w.b64 == nil {
		w.b64 = newStreamEncoder(&w.sink)
	}
	w.b64.encode(p)
	w.b64.flush()
	if w.quoteChar != 0 {
		w.sink.WriteByte(w.quoteChar)
	}
}

// writeCanonical emits the canonical text of a non-string scalar. Kinds
// with a quoted JSON form get the active quote character around their
// text. The HTML representation wraps the text in a value container and
// flags an absent reference with the text NULL, so unexpected empty
// references stay visible in the editor.
func (w *Writer) writeCanonical(v scalar.Value, hint LayoutHint) {
	if w.mode == ModeHTML {
		text := v.Text()
		if v.Absent() {
			text = "NULL"
		}
		w.htmlValueOpen(hint)
		w.sink.WriteString(text)
		w.sink.WriteString(htmlValueClose)
		return
	}
	if v.Absent() {
		w.sink.WriteString("null")
		return
	}
	if v.Kind().Quoted() {
		w.sink.WriteByte(w.quoteChar)
		w.sink.WriteString(v.Text())
		w.sink.WriteByte(w.quoteChar)
		return
	}
	w.sink.WriteString(v.Text())
}

// WriteComment writes a comment. The HTML representation suppresses it.
func (w *Writer) WriteComment(text string) error {
	if _, err := w.begin(nesting.TokenComment); err != nil {
		return err
	}
	if w.mode != ModeHTML {
		w.sink.WriteStrings("/*", text, "*/")
	}
	return w.sink.err
}

// WriteWhitespace writes layout whitespace verbatim. Text containing
// anything but spaces, tabs, or line breaks is rejected. The HTML
// representation suppresses it.
func (w *Writer) WriteWhitespace(ws string) error {
	for _, ch := range ws {
		switch ch {
		case ' ', '\t', '\n', '\r':
		default:
			return ErrWhitespace
		}
	}
	if _, err := w.begin(nesting.TokenWhitespace); err != nil {
		return err
	}
	if w.mode != ModeHTML {
		w.sink.WriteString(ws)
	}
	return w.sink.err
}

// WriteRaw writes text verbatim in every representation. The caller is
// responsible for its validity.
func (w *Writer) WriteRaw(text string) error {
	if _, err := w.begin(nesting.TokenRaw); err != nil {
		return err
	}
	w.sink.WriteString(text)
	return w.sink.err
}

// Flush reports the first error collected from the sink. The writer keeps
// no buffered output besides the per-value base64 accumulator, which is
// always drained before a value write returns, so there is nothing else to
// flush. Flush is idempotent; after Close it returns ErrClosed.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}
	return w.sink.err
}

// Close ends any still-open containers (unless disabled with
// SetCloseOpen), then closes the underlying sink if it implements
// io.Closer. The sink is closed exactly once; closing an already closed
// writer is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if w.closeOpen {
		w.completeDocument()
	}
	w.closed = true
	err := w.sink.err
	if c, ok := w.sink.w.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// completeDocument ends all open containers in the active representation.
// A property name without a value receives an explicit null first.
func (w *Writer) completeDocument() {
	if w.stack.State() == nesting.StateProperty {
		w.WriteValue(scalar.Null())
	}
	for w.stack.Depth() > 0 {
		var t nesting.Token
		switch w.stack.Current() {
		case nesting.ContainerObject:
			t = nesting.TokenEndObject
		case nesting.ContainerArray:
			t = nesting.TokenEndArray
		default:
			t = nesting.TokenEndConstructor
		}
		if err := w.writeEnd(t); err != nil {
			return
		}
	}
}
