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

import "fmt"

// Mode selects the representation the writer emits. It is writer-wide and
// may be reassigned between any two calls.
type Mode uint8

// Constants for Mode
const (
	ModeCompact  Mode = iota // JSON text without layout whitespace
	ModeIndented             // JSON text with line breaks and indentation
	ModeHTML                 // HTML fragment tree for the data editor
)

var modeNames = [...]string{"compact", "indented", "html"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode-%d", m)
}

// ParseMode returns the mode named by text.
func ParseMode(text string) (Mode, error) {
	for m, name := range modeNames {
		if text == name {
			return Mode(m), nil
		}
	}
	return ModeCompact, fmt.Errorf("unknown mode %q", text)
}

// LayoutHint adjusts the HTML layout attributes of a single node. It is
// given per call, defaults to HintValueCell, and is never stored. JSON
// output ignores it.
type LayoutHint uint8

// Constants for LayoutHint
const (
	HintValueCell LayoutHint = iota // standard editable value cell
	HintWideCell                    // value stretches over the full row
	HintBareCell                    // no flex sizing attribute
)

// flexAttr returns the flex attribute of a value container.
func (h LayoutHint) flexAttr() string {
	switch h {
	case HintWideCell:
		return ` flex="100"`
	case HintBareCell:
		return ""
	default:
		return ` flex="80"`
	}
}
