//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Odense Bys Museer
//
// This file is part of DWS.
//
// DWS is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package nesting

import "fmt"

// ViolationError reports a structural token that is not legal at the
// current position of the document.
type ViolationError struct {
	Token Token
	State State
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("token %v not legal in state %v", e.Token, e.State)
}
