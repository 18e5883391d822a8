// Package repl drives a full evaluation session: it decodes a stream of
// JSON-encoded expression trees and feeds each top-level form to one
// evaluator. There is no reader for Lisp source text; the front end that
// produced the trees is out of scope.
package repl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"clove/internal/ast"
	"clove/internal/evaluator"
	"clove/internal/object"
	"clove/internal/util"
)

// Run evaluates every top-level form arriving on in. println output and,
// when configured, per-form results go to out. The returned error is the
// first runtime failure when cfg.HaltOnError is set, otherwise the last
// one observed; decode failures always halt.
func Run(in io.Reader, out io.Writer, cfg util.Configuration) error {
	e := evaluator.New(out)

	decoder := json.NewDecoder(in)
	var lastErr error

	for i := 0; ; i++ {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return lastErr
			}
			return fmt.Errorf("form %d: %w", i, err)
		}

		// DecodeProgram accepts a whole Program document or a single
		// expression tree.
		program, err := ast.DecodeProgram(raw)
		if err != nil {
			return fmt.Errorf("form %d: %w", i, err)
		}

		for _, expr := range program.Expressions {
			slog.Debug("evaluating form", slog.String("expr", expr.String()))

			result := e.EvalTopLevel(expr)
			if evalErr, ok := result.(*object.Error); ok {
				fmt.Fprintf(out, "error: %s\n", evalErr.Inspect())
				lastErr = evalErr.Err()
				if cfg.HaltOnError {
					return lastErr
				}
				continue
			}

			if cfg.EchoResults {
				fmt.Fprintln(out, result.Inspect())
			}
		}
	}
}
