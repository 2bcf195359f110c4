package lisp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/emalang/ema/parser/token"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LVoid
	LBool
	LNumber
	LString
	LSymbol
	LList
	LFun
	LObject
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LVoid:    "void",
	LBool:    "boolean",
	LNumber:  "number",
	LString:  "string",
	LSymbol:  "symbol",
	LList:    "list",
	LFun:     "function",
	LObject:  "object",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// Handle addresses a frame in an Arena.
type Handle int

// noHandle marks an LEnv that has not been pushed to an Arena.
const noHandle Handle = -1

// LVal is a lisp value.  The same representation is used for source code and
// for runtime values.
//
// LVal values are never mutated once constructed.  Function and object values
// refer to their environment through an arena Handle so copying an LVal never
// copies a frame.
type LVal struct {
	Type  LValType
	Num   float64
	Bool  bool
	Str   string // string contents or symbol name
	Cells []*LVal

	// Function values
	Params []string
	Body   *LVal

	// Function and object values.  For functions Frame is the captured
	// defining environment.  For objects it is the object's own frame.
	Frame Handle

	// Object values
	Parent *LVal // parent class object, used by super
	Class  bool  // class or module, as opposed to an instance

	Source *token.Location
}

// Void returns the LVal representing the absence of a value.
func Void() *LVal {
	return &LVal{Type: LVoid}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{Type: LBool, Bool: b}
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{Type: LNumber, Num: x}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{Type: LString, Str: s}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{Type: LSymbol, Str: s}
}

// List returns an LVal representing the list of the given cells.  Lists are
// both source forms and list values.
func List(cells ...*LVal) *LVal {
	return &LVal{Type: LList, Cells: cells}
}

// Fun returns a function value with the given parameters and body that
// captured the frame referenced by h.
func Fun(params []string, body *LVal, h Handle) *LVal {
	return &LVal{
		Type:   LFun,
		Params: params,
		Body:   body,
		Frame:  h,
	}
}

// Object returns an object value for the frame h.  parent is nil or the
// class object used to resolve super.
func Object(h Handle, parent *LVal, class bool) *LVal {
	return &LVal{
		Type:   LObject,
		Frame:  h,
		Parent: parent,
		Class:  class,
	}
}

// IsVoid returns true if v is the void value.
func (v *LVal) IsVoid() bool {
	return v.Type == LVoid
}

// IsSymbol returns true if v is the symbol named s.
func (v *LVal) IsSymbol(s string) bool {
	return v.Type == LSymbol && v.Str == s
}

// IsForm returns true if v is a list whose first cell is the symbol named s.
func (v *LVal) IsForm(s string) bool {
	return v.Type == LList && len(v.Cells) > 0 && v.Cells[0].IsSymbol(s)
}

func (v *LVal) numeric() (float64, bool) {
	switch v.Type {
	case LNumber:
		return v.Num, true
	case LBool:
		if v.Bool {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Equal returns true if v and other are structurally equal.  Source
// locations are ignored.
func (v *LVal) Equal(other *LVal) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case LVoid:
		return true
	case LBool:
		return v.Bool == other.Bool
	case LNumber:
		return v.Num == other.Num
	case LString, LSymbol:
		return v.Str == other.Str
	case LList:
		if len(v.Cells) != len(other.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(other.Cells[i]) {
				return false
			}
		}
		return true
	case LFun:
		if v.Frame != other.Frame || len(v.Params) != len(other.Params) {
			return false
		}
		for i := range v.Params {
			if v.Params[i] != other.Params[i] {
				return false
			}
		}
		return v.Body.Equal(other.Body)
	case LObject:
		return v.Frame == other.Frame
	default:
		return false
	}
}

func (v *LVal) String() string {
	switch v.Type {
	case LVoid:
		return "nil"
	case LBool:
		return strconv.FormatBool(v.Bool)
	case LNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case LString, LSymbol:
		return v.Str
	case LList:
		return exprString(v, "(", ")")
	case LFun:
		return "fn(" + strings.Join(v.Params, ", ") + ")"
	case LObject:
		if v.Class {
			return fmt.Sprintf("#<class %d>", v.Frame)
		}
		return fmt.Sprintf("#<instance %d>", v.Frame)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
