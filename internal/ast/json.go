package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Walk recursively serializes an expression tree into a machine-centric map
// structure keyed by a "type" discriminator. This output is designed for
// stability, canonical representation, and tool-chain consumption.
func Walk(node Node) interface{} {
	switch n := node.(type) {
	case *Program:
		expressions := make([]interface{}, len(n.Expressions))
		for i, e := range n.Expressions {
			expressions[i] = Walk(e)
		}
		return map[string]interface{}{
			"type":        "Program",
			"expressions": expressions,
		}

	case *NumberLiteral:
		return map[string]interface{}{
			"type":  "NumberLiteral",
			"value": n.Value,
		}

	case *Symbol:
		return map[string]interface{}{
			"type": "Symbol",
			"name": n.Name,
		}

	case *CallExpression:
		operands := make([]interface{}, len(n.Operands))
		for i, o := range n.Operands {
			operands[i] = Walk(o)
		}
		return map[string]interface{}{
			"type":     "CallExpression",
			"operator": Walk(n.Operator),
			"operands": operands,
		}

	case *IfExpression:
		m := map[string]interface{}{
			"type":      "IfExpression",
			"condition": Walk(n.Condition),
			"then":      Walk(n.Then),
		}
		if n.Else != nil {
			m["else"] = Walk(n.Else)
		}
		return m

	case *CondExpression:
		clauses := make([]interface{}, len(n.Clauses))
		for i, c := range n.Clauses {
			clauses[i] = map[string]interface{}{
				"test":   Walk(c.Test),
				"result": Walk(c.Result),
			}
		}
		m := map[string]interface{}{
			"type":    "CondExpression",
			"clauses": clauses,
		}
		if n.Else != nil {
			m["else"] = Walk(n.Else)
		}
		return m

	case *DefnExpression:
		parameters := make([]interface{}, len(n.Parameters))
		for i, p := range n.Parameters {
			parameters[i] = p
		}
		return map[string]interface{}{
			"type":       "DefnExpression",
			"name":       n.Name,
			"parameters": parameters,
			"body":       Walk(n.Body),
		}

	case nil:
		return nil

	default:
		// The Expression variant is closed; a new node type must be added
		// here before it can be serialized.
		panic(fmt.Sprintf("ast: Walk does not handle %T", node))
	}
}

// EncodeProgram renders a program as indented JSON.
func EncodeProgram(p *Program) ([]byte, error) {
	return json.MarshalIndent(Walk(p), "", "  ")
}

// DecodeProgram parses a JSON document produced by EncodeProgram (or built
// by an external front end) back into a program.
func DecodeProgram(data []byte) (*Program, error) {
	raw, err := decodeValue(data)
	if err != nil {
		return nil, err
	}

	m, ok := raw.(map[string]interface{})
	if !ok || m["type"] != "Program" {
		// A bare expression is accepted as a one-form program.
		expr, err := fromValue(raw)
		if err != nil {
			return nil, err
		}
		return &Program{Expressions: []Expression{expr}}, nil
	}

	items, err := sliceField(m, "expressions")
	if err != nil {
		return nil, err
	}
	program := &Program{}
	for _, item := range items {
		expr, err := fromValue(item)
		if err != nil {
			return nil, err
		}
		program.Expressions = append(program.Expressions, expr)
	}
	return program, nil
}

// DecodeExpression parses a single JSON-encoded expression tree.
func DecodeExpression(data []byte) (Expression, error) {
	raw, err := decodeValue(data)
	if err != nil {
		return nil, err
	}
	return fromValue(raw)
}

// decodeValue parses with UseNumber so integer literals keep the full
// int64 range instead of rounding through float64.
func decodeValue(data []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed expression document: %w", err)
	}
	return raw, nil
}

func fromValue(raw interface{}) (Expression, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expression node must be an object, got %T", raw)
	}

	typ, _ := m["type"].(string)
	switch typ {
	case "NumberLiteral":
		v, err := intField(m, "value")
		if err != nil {
			return nil, err
		}
		return &NumberLiteral{Value: v}, nil

	case "Symbol":
		name, err := stringField(m, "name")
		if err != nil {
			return nil, err
		}
		return &Symbol{Name: name}, nil

	case "CallExpression":
		operator, err := exprField(m, "operator")
		if err != nil {
			return nil, err
		}
		items, err := sliceField(m, "operands")
		if err != nil {
			return nil, err
		}
		call := &CallExpression{Operator: operator}
		for _, item := range items {
			operand, err := fromValue(item)
			if err != nil {
				return nil, err
			}
			call.Operands = append(call.Operands, operand)
		}
		return call, nil

	case "IfExpression":
		condition, err := exprField(m, "condition")
		if err != nil {
			return nil, err
		}
		then, err := exprField(m, "then")
		if err != nil {
			return nil, err
		}
		node := &IfExpression{Condition: condition, Then: then}
		if _, present := m["else"]; present {
			node.Else, err = exprField(m, "else")
			if err != nil {
				return nil, err
			}
		}
		return node, nil

	case "CondExpression":
		items, err := sliceField(m, "clauses")
		if err != nil {
			return nil, err
		}
		node := &CondExpression{}
		for _, item := range items {
			cm, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("cond clause must be an object, got %T", item)
			}
			test, err := exprField(cm, "test")
			if err != nil {
				return nil, err
			}
			result, err := exprField(cm, "result")
			if err != nil {
				return nil, err
			}
			node.Clauses = append(node.Clauses, CondClause{Test: test, Result: result})
		}
		if _, present := m["else"]; present {
			node.Else, err = exprField(m, "else")
			if err != nil {
				return nil, err
			}
		}
		return node, nil

	case "DefnExpression":
		name, err := stringField(m, "name")
		if err != nil {
			return nil, err
		}
		body, err := exprField(m, "body")
		if err != nil {
			return nil, err
		}
		node := &DefnExpression{Name: name, Body: body}
		if rawParams, present := m["parameters"]; present && rawParams != nil {
			params, ok := rawParams.([]interface{})
			if !ok {
				return nil, fmt.Errorf("defn parameters must be an array, got %T", rawParams)
			}
			for _, p := range params {
				s, ok := p.(string)
				if !ok {
					return nil, fmt.Errorf("defn parameter must be a string, got %T", p)
				}
				node.Parameters = append(node.Parameters, s)
			}
		}
		return node, nil

	default:
		return nil, fmt.Errorf("unknown expression type %q", typ)
	}
}

func exprField(m map[string]interface{}, key string) (Expression, error) {
	raw, present := m[key]
	if !present {
		return nil, fmt.Errorf("%v node is missing %q", m["type"], key)
	}
	return fromValue(raw)
}

func stringField(m map[string]interface{}, key string) (string, error) {
	s, ok := m[key].(string)
	if !ok {
		return "", fmt.Errorf("%v node is missing string %q", m["type"], key)
	}
	return s, nil
}

func sliceField(m map[string]interface{}, key string) ([]interface{}, error) {
	items, ok := m[key].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%v node is missing array %q", m["type"], key)
	}
	return items, nil
}

func intField(m map[string]interface{}, key string) (int64, error) {
	n, ok := m[key].(json.Number)
	if !ok {
		return 0, fmt.Errorf("%v node is missing number %q", m["type"], key)
	}
	v, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%v node %q must be an int64, got %v", m["type"], key, n)
	}
	return v, nil
}
