package evaluator

import (
	"fmt"
	"io"
	"log/slog"

	"clove/internal/ast"
	"clove/internal/object"
)

var NIL = object.NIL

// Evaluator reduces expression trees to values against an arena of
// environment frames. One evaluator owns one arena: top-level forms share
// its root frame, so a defn is visible to every later form of the same
// run, and the whole arena is discarded with the evaluator.
type Evaluator struct {
	frames *object.Frames
	out    io.Writer
}

// New creates an evaluator whose println builtin writes to out.
func New(out io.Writer) *Evaluator {
	e := &Evaluator{
		frames: object.NewFrames(),
		out:    out,
	}
	e.installBuiltins()
	return e
}

// EvalTopLevel evaluates one top-level form in the root frame.
func (e *Evaluator) EvalTopLevel(node ast.Expression) object.Object {
	return e.Eval(node, object.RootFrame)
}

// EvalProgram evaluates forms in order and returns the last result. The
// first error aborts the remaining forms.
func (e *Evaluator) EvalProgram(program *ast.Program) object.Object {
	var result object.Object = NIL

	for _, expr := range program.Expressions {
		result = e.EvalTopLevel(expr)
		if isError(result) {
			return result
		}
	}

	return result
}

func (e *Evaluator) Eval(node ast.Expression, frame int) object.Object {
	switch node := node.(type) {

	case *ast.NumberLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.Symbol:
		return e.evalSymbol(node, frame)

	case *ast.CallExpression:
		return e.evalCallExpression(node, frame)

	case *ast.IfExpression:
		return e.evalIfExpression(node, frame)

	case *ast.CondExpression:
		return e.evalCondExpression(node, frame)

	case *ast.DefnExpression:
		e.frames.Define(frame, node.Name, &object.Function{
			Name:       node.Name,
			Parameters: node.Parameters,
			Body:       node.Body,
			Frame:      frame,
		})
		return NIL
	}

	return newError(object.NotCallable, "unsupported expression: %s", node.String())
}

func (e *Evaluator) evalSymbol(node *ast.Symbol, frame int) object.Object {
	if val, ok := e.frames.Resolve(frame, node.Name); ok {
		return val
	}
	return newError(object.UnboundName, "name not found: %s", node.Name)
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, frame int) object.Object {
	// Operator first, then every operand, left to right and eager.
	operator := e.Eval(node.Operator, frame)
	if isError(operator) {
		return operator
	}

	var args []object.Object
	for _, operand := range node.Operands {
		evaluated := e.Eval(operand, frame)
		if isError(evaluated) {
			return evaluated
		}
		args = append(args, evaluated)
	}

	return e.applyOperator(operator, args)
}

// applyOperator dispatches once on the resolved operator value: a native
// builtin, a user definition, or neither.
func (e *Evaluator) applyOperator(operator object.Object, args []object.Object) object.Object {
	switch fn := operator.(type) {
	case *object.Builtin:
		return fn.Fn(args...)

	case *object.Function:
		if len(args) != len(fn.Parameters) {
			return newError(object.ArityMismatch,
				"%s expects %d argument(s), got %d",
				fn.Name, len(fn.Parameters), len(args))
		}

		slog.Debug("apply function",
			slog.String("name", fn.Name),
			slog.Int("args", len(args)))

		callFrame := e.frames.Push(fn.Frame)
		for i, param := range fn.Parameters {
			e.frames.Define(callFrame, param, args[i])
		}
		return e.Eval(fn.Body, callFrame)

	default:
		return newError(object.NotCallable, "not a function: %s", operator.Type())
	}
}

func (e *Evaluator) evalIfExpression(node *ast.IfExpression, frame int) object.Object {
	condition := e.Eval(node.Condition, frame)
	if isError(condition) {
		return condition
	}

	truthy, err := isTruthy(condition)
	if err != nil {
		return err
	}

	if truthy {
		return e.Eval(node.Then, frame)
	}
	if node.Else != nil {
		return e.Eval(node.Else, frame)
	}
	return NIL
}

func (e *Evaluator) evalCondExpression(node *ast.CondExpression, frame int) object.Object {
	for _, clause := range node.Clauses {
		test := e.Eval(clause.Test, frame)
		if isError(test) {
			return test
		}

		truthy, err := isTruthy(test)
		if err != nil {
			return err
		}

		// First match wins; later clauses are not evaluated.
		if truthy {
			return e.Eval(clause.Result, frame)
		}
	}

	if node.Else != nil {
		return e.Eval(node.Else, frame)
	}

	return newError(object.NonExhaustiveCond, "no cond clause matched and no :else present")
}

// isTruthy interprets a condition value: a non-zero integer is true, zero
// is false. Anything else is a type error.
func isTruthy(obj object.Object) (bool, *object.Error) {
	n, ok := obj.(*object.Integer)
	if !ok {
		return false, newError(object.TypeMismatch, "condition must be an integer, got %s", obj.Type())
	}
	return n.Value != 0, nil
}

func newError(kind object.ErrorKind, format string, a ...interface{}) *object.Error {
	return &object.Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}
