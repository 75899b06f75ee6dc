//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Odense Bys Museer
//
// This file is part of DWS.
//
// DWS is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package nesting tracks the currently open containers of a document and
// decides which structural tokens are legal at the current position. It is
// independent of any output representation: the writer consults it before
// emitting anything, so illegal nesting is reported before partial output
// is produced.
package nesting

// Token identifies one structural write operation.
type Token uint8

// Constants for Token
const (
	TokenStartObject Token = iota
	TokenEndObject
	TokenStartArray
	TokenEndArray
	TokenStartConstructor
	TokenEndConstructor
	TokenPropertyName
	TokenValue
	TokenComment
	TokenWhitespace
	TokenRaw
)

var tokenNames = [...]string{
	"start-object",
	"end-object",
	"start-array",
	"end-array",
	"start-constructor",
	"end-constructor",
	"property-name",
	"value",
	"comment",
	"whitespace",
	"raw",
}

func (t Token) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "token-" + itoa(uint8(t))
}

// Container identifies a kind of open container.
type Container uint8

// Constants for Container
const (
	ContainerNone Container = iota
	ContainerObject
	ContainerArray
	ContainerConstructor
)

var containerNames = [...]string{"none", "object", "array", "constructor"}

func (c Container) String() string {
	if int(c) < len(containerNames) {
		return containerNames[c]
	}
	return "container-" + itoa(uint8(c))
}

// State describes the position within the document.
type State uint8

// Constants for State
const (
	StateStart            State = iota // nothing written yet
	StateProperty                      // a property name awaits its value
	StateObjectStart                   // an object was opened, no content yet
	StateObject                        // inside an object, after a completed pair
	StateArrayStart                    // an array was opened, no content yet
	StateArray                         // inside an array, after a completed element
	StateConstructorStart              // a constructor was opened, no argument yet
	StateConstructor                   // inside a constructor, after an argument
	StateFinished                      // the top-level value is complete
)

var stateNames = [...]string{
	"start",
	"property",
	"object-start",
	"object",
	"array-start",
	"array",
	"constructor-start",
	"constructor",
	"finished",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "state-" + itoa(uint8(s))
}

func itoa(v uint8) string {
	if v >= 10 {
		return string([]byte{'0' + v/10, '0' + v%10})
	}
	return string([]byte{'0' + v})
}

// Action tells the caller how the token it is about to emit relates to its
// surroundings. The fields are derived from the state before the token.
type Action struct {
	Delimiter bool      // a value delimiter belongs before the token
	KeySpace  bool      // the token directly follows a property name
	Break     bool      // a line break belongs before the token in indented layouts
	Level     int       // container depth used for indenting the token
	Closed    Container // container ended by an end token, ContainerNone otherwise
}

// Stack is the nesting-context stack. The zero value is not usable; create
// one with NewStack.
type Stack struct {
	open  []Container
	state State
}

// NewStack creates an empty nesting-context stack.
func NewStack() *Stack {
	return &Stack{open: make([]Container, 0, 8), state: StateStart}
}

// Depth returns the number of currently open containers.
func (s *Stack) Depth() int { return len(s.open) }

// State returns the current position state.
func (s *Stack) State() State { return s.state }

// Current returns the innermost open container.
func (s *Stack) Current() Container {
	if len(s.open) == 0 {
		return ContainerNone
	}
	return s.open[len(s.open)-1]
}

// Check reports whether the given token is legal at the current position.
// It never changes the stack.
func (s *Stack) Check(t Token) error {
	switch t {
	case TokenStartObject, TokenStartArray, TokenStartConstructor, TokenValue:
		switch s.state {
		case StateStart, StateProperty, StateArrayStart, StateArray,
			StateConstructorStart, StateConstructor:
			return nil
		}
	case TokenEndObject:
		if s.state == StateObjectStart || s.state == StateObject {
			return nil
		}
	case TokenEndArray:
		if s.state == StateArrayStart || s.state == StateArray {
			return nil
		}
	case TokenEndConstructor:
		if s.state == StateConstructorStart || s.state == StateConstructor {
			return nil
		}
	case TokenPropertyName:
		if s.state == StateObjectStart || s.state == StateObject {
			return nil
		}
	case TokenComment, TokenWhitespace, TokenRaw:
		return nil
	}
	return &ViolationError{Token: t, State: s.state}
}

// Advance validates the token, advances the stack, and returns the layout
// action for the token. On a violation the stack is left unchanged.
func (s *Stack) Advance(t Token) (Action, error) {
	if err := s.Check(t); err != nil {
		return Action{}, err
	}
	pre := s.state
	inList := pre == StateArrayStart || pre == StateArray ||
		pre == StateConstructorStart || pre == StateConstructor
	act := Action{Level: len(s.open)}

	switch t {
	case TokenStartObject, TokenStartArray, TokenStartConstructor:
		act.Delimiter = pre == StateArray || pre == StateConstructor
		act.KeySpace = pre == StateProperty
		act.Break = inList
		switch t {
		case TokenStartObject:
			s.open = append(s.open, ContainerObject)
			s.state = StateObjectStart
		case TokenStartArray:
			s.open = append(s.open, ContainerArray)
			s.state = StateArrayStart
		default:
			s.open = append(s.open, ContainerConstructor)
			s.state = StateConstructorStart
		}
	case TokenPropertyName:
		act.Delimiter = pre == StateObject
		act.Break = true
		s.state = StateProperty
	case TokenValue:
		act.Delimiter = pre == StateArray || pre == StateConstructor
		act.KeySpace = pre == StateProperty
		act.Break = inList
		s.state = s.afterValue()
	case TokenEndObject, TokenEndArray, TokenEndConstructor:
		act.Closed = s.open[len(s.open)-1]
		act.Break = pre == StateObject || pre == StateArray || pre == StateConstructor
		s.open = s.open[:len(s.open)-1]
		act.Level = len(s.open)
		s.state = s.afterValue()
	case TokenComment:
		act.Break = inList
	case TokenWhitespace, TokenRaw:
		// Emitted verbatim, no layout and no state change.
	}
	return act, nil
}

// afterValue returns the state after a value or container completed at the
// current depth.
func (s *Stack) afterValue() State {
	if len(s.open) == 0 {
		return StateFinished
	}
	switch s.open[len(s.open)-1] {
	case ContainerObject:
		return StateObject
	case ContainerArray:
		return StateArray
	default:
		return StateConstructor
	}
}
