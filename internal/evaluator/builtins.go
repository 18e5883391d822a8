package evaluator

import (
	"fmt"
	"strings"

	"clove/internal/object"
)

func (e *Evaluator) installBuiltins() {
	for _, b := range []*object.Builtin{
		funcAdd(),
		funcSubtract(),
		funcGreaterThan(),
		funcEquals(),
		e.funcPrintLn(),
	} {
		e.frames.Define(object.RootFrame, b.Name, b)
	}
}

// funcAdd sums all of its integer operands. No operands sums to zero.
func funcAdd() *object.Builtin {
	return &object.Builtin{
		Name: "+",
		Fn: func(args ...object.Object) object.Object {
			var sum int64
			for _, arg := range args {
				n, ok := arg.(*object.Integer)
				if !ok {
					return newError(object.TypeMismatch,
						"operand to `+` must be INTEGER, got %s", arg.Type())
				}
				sum += n.Value
			}
			return &object.Integer{Value: sum}
		},
	}
}

// funcSubtract left-folds subtraction across all operands.
func funcSubtract() *object.Builtin {
	return &object.Builtin{
		Name: "-",
		Fn: func(args ...object.Object) object.Object {
			if len(args) == 0 {
				return newError(object.ArityMismatch,
					"wrong number of arguments to `-`. got=0, want=1+")
			}

			var acc int64
			for i, arg := range args {
				n, ok := arg.(*object.Integer)
				if !ok {
					return newError(object.TypeMismatch,
						"operand to `-` must be INTEGER, got %s", arg.Type())
				}
				if i == 0 {
					acc = n.Value
				} else {
					acc -= n.Value
				}
			}
			return &object.Integer{Value: acc}
		},
	}
}

func funcGreaterThan() *object.Builtin {
	return comparison(">", func(left, right int64) bool { return left > right })
}

func funcEquals() *object.Builtin {
	return comparison("=", func(left, right int64) bool { return left == right })
}

// comparison builds a binary integer comparison producing a boolean-like
// integer: 1 when the relation holds, 0 otherwise.
func comparison(name string, relation func(left, right int64) bool) *object.Builtin {
	return &object.Builtin{
		Name: name,
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 2 {
				return newError(object.ArityMismatch,
					"wrong number of arguments to `%s`. got=%d, want=2", name, len(args))
			}

			left, ok := args[0].(*object.Integer)
			if !ok {
				return newError(object.TypeMismatch,
					"operand to `%s` must be INTEGER, got %s", name, args[0].Type())
			}
			right, ok := args[1].(*object.Integer)
			if !ok {
				return newError(object.TypeMismatch,
					"operand to `%s` must be INTEGER, got %s", name, args[1].Type())
			}

			if relation(left.Value, right.Value) {
				return &object.Integer{Value: 1}
			}
			return &object.Integer{Value: 0}
		},
	}
}

// funcPrintLn emits its evaluated arguments to the evaluator's output sink
// and returns the unit value. This is the only observable side effect.
func (e *Evaluator) funcPrintLn() *object.Builtin {
	return &object.Builtin{
		Name: "println",
		Fn: func(args ...object.Object) object.Object {
			parts := make([]string, len(args))
			for i, arg := range args {
				parts[i] = arg.Inspect()
			}
			fmt.Fprintln(e.out, strings.Join(parts, " "))
			return NIL
		},
	}
}
