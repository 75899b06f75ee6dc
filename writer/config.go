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

import "errors"

// Errors signalled when a configuration value is rejected. They are raised
// at the point of assignment, never deferred to a later write call.
var (
	ErrQuoteChar   = errors.New("quote character must be a double or single quote")
	ErrIndentWidth = errors.New("indent width must not be negative")
)

// Config holds the quoting and layout configuration of a Writer. It is
// owned exclusively by the writer; while the writer is in HTML mode the
// configured quoting is overridden, not changed.
type Config struct {
	QuoteChar   byte // bounding quote for JSON string literals
	QuoteName   bool // quote property names
	IndentChar  byte // character repeated for one indentation step
	IndentWidth int  // indentation characters per nesting level
}

// DefaultConfig returns the default configuration: double quotes, quoted
// property names, and an indentation of two spaces per level.
func DefaultConfig() Config {
	return Config{QuoteChar: '"', QuoteName: true, IndentChar: ' ', IndentWidth: 2}
}

// SetQuoteChar sets the configured quote character. Only a double or a
// single quote is accepted.
func (w *Writer) SetQuoteChar(c byte) error {
	if c != '"' && c != '\'' {
		return ErrQuoteChar
	}
	w.cfg.QuoteChar = c
	w.applyQuoting()
	return nil
}

// SetQuoteName configures whether property names are quoted.
func (w *Writer) SetQuoteName(on bool) {
	w.cfg.QuoteName = on
	w.applyQuoting()
}

// SetIndentWidth sets the number of indentation characters per nesting
// level. Zero is allowed: indented output then consists of bare line
// breaks, which still distinguishes it from compact output.
func (w *Writer) SetIndentWidth(n int) error {
	if n < 0 {
		return ErrIndentWidth
	}
	w.cfg.IndentWidth = n
	return nil
}

// SetIndentChar sets the indentation character.
func (w *Writer) SetIndentChar(c byte) {
	w.cfg.IndentChar = c
}

// SetCloseOpen configures whether Close ends still-open containers before
// closing the sink.
func (w *Writer) SetCloseOpen(on bool) {
	w.closeOpen = on
}
