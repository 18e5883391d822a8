package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"clove/internal/ast"
)

const (
	NIL_OBJ     = "NIL"
	INTEGER_OBJ = "INTEGER"

	FUNCTION_OBJ = "FUNCTION"
	BUILTIN_OBJ  = "BUILTIN"
	ERROR_OBJ    = "ERROR"
)

var NIL = &Nil{}

type ObjectType string

type Object interface {
	Type() ObjectType
	Inspect() string
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

// Nil is the unit value: the result of println, defn, and an if with no
// taken else branch.
type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "nil" }

// Function is a user definition captured by defn. Frame indexes the arena
// frame the definition was made in; calls chain their frame to it.
type Function struct {
	Name       string
	Parameters []string
	Body       ast.Expression
	Frame      int
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer

	out.WriteString("fn ")
	out.WriteString(f.Name)
	out.WriteString("[")
	out.WriteString(strings.Join(f.Parameters, " "))
	out.WriteString("] ")
	out.WriteString(f.Body.String())

	return out.String()
}

type BuiltinFunction func(args ...Object) Object

// Builtin is an operator implemented natively by the evaluator.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin " + b.Name }

// ErrorKind is the closed set of runtime failure classes.
type ErrorKind string

const (
	UnboundName       ErrorKind = "UnboundName"
	NotCallable       ErrorKind = "NotCallable"
	ArityMismatch     ErrorKind = "ArityMismatch"
	TypeMismatch      ErrorKind = "TypeMismatch"
	NonExhaustiveCond ErrorKind = "NonExhaustiveCond"
)

// Error propagates through evaluation as a value; the first error produced
// aborts the enclosing top-level form.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

// Err converts a runtime error object into a host error.
func (e *Error) Err() error {
	return fmt.Errorf("%s: %s", e.Kind, e.Message)
}
