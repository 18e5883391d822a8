package ast

import (
	"bytes"
	"strconv"
	"strings"
)

// The base Node interface
type Node interface {
	String() string
}

// Expression is any evaluatable form. The set of implementations is closed;
// the evaluator switches over the concrete types.
type Expression interface {
	Node
	expressionNode()
}

// Program is an ordered sequence of top-level forms.
type Program struct {
	Expressions []Expression
}

func (p *Program) String() string {
	var out bytes.Buffer

	for i, e := range p.Expressions {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(e.String())
	}

	return out.String()
}

type NumberLiteral struct {
	Value int64
}

func (n *NumberLiteral) expressionNode() {}
func (n *NumberLiteral) String() string  { return strconv.FormatInt(n.Value, 10) }

type Symbol struct {
	Name string
}

func (s *Symbol) expressionNode() {}
func (s *Symbol) String() string  { return s.Name }

type CallExpression struct {
	Operator Expression
	Operands []Expression
}

func (ce *CallExpression) expressionNode() {}
func (ce *CallExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(ce.Operator.String())
	for _, o := range ce.Operands {
		out.WriteString(" ")
		out.WriteString(o.String())
	}
	out.WriteString(")")

	return out.String()
}

type IfExpression struct {
	Condition Expression
	Then      Expression
	Else      Expression
}

func (ie *IfExpression) expressionNode() {}
func (ie *IfExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(if ")
	out.WriteString(ie.Condition.String())
	out.WriteString(" ")
	out.WriteString(ie.Then.String())
	if ie.Else != nil {
		out.WriteString(" ")
		out.WriteString(ie.Else.String())
	}
	out.WriteString(")")

	return out.String()
}

// CondClause is one (test, result) pair of a cond form.
type CondClause struct {
	Test   Expression
	Result Expression
}

type CondExpression struct {
	Clauses []CondClause
	Else    Expression // catch-all result, nil when the form has no :else
}

func (ce *CondExpression) expressionNode() {}
func (ce *CondExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(cond")
	for _, c := range ce.Clauses {
		out.WriteString(" ")
		out.WriteString(c.Test.String())
		out.WriteString(" ")
		out.WriteString(c.Result.String())
	}
	if ce.Else != nil {
		out.WriteString(" :else ")
		out.WriteString(ce.Else.String())
	}
	out.WriteString(")")

	return out.String()
}

type DefnExpression struct {
	Name       string
	Parameters []string
	Body       Expression
}

func (de *DefnExpression) expressionNode() {}
func (de *DefnExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(defn ")
	out.WriteString(de.Name)
	out.WriteString(" [")
	out.WriteString(strings.Join(de.Parameters, " "))
	out.WriteString("] ")
	out.WriteString(de.Body.String())
	out.WriteString(")")

	return out.String()
}
