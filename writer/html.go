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

import "github.com/odensebysmuseer/DWS/strfun"

// The class names below are a wire contract with the browser-side editor
// and must not be renamed or restructured.
const (
	htmlStartObject = `<div class="iio-object" flex="100">`
	htmlStartArray  = `<div class="iio-array">`
	htmlEnd         = `</div>`
	htmlLabelOpen   = `<div class="input-group-addon iio-property-name" flex="20">`
	htmlLabelClose  = `</div>`
	htmlValueClose  = `</span></div>`
)

// htmlPropertyName composes the label element for a property name and runs
// the composed markup through the JSON string escaper, treating the markup
// as one opaque string. The editor expects JSON-string escaping here, not
// HTML escaping.
func (w *Writer) htmlPropertyName(name string) {
	strfun.JSONEscape(&w.sink, htmlLabelOpen+name+htmlLabelClose, w.quoteChar)
}

// htmlValueOpen opens the value container for one node, sized by the
// layout hint of the call.
func (w *Writer) htmlValueOpen(hint LayoutHint) {
	w.sink.WriteStrings(`<div class="iio-value"`, hint.flexAttr(),
		`><span class="iio-value-internal">`)
}
