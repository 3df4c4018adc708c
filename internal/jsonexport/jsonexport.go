// Package jsonexport encodes and decodes results as JSON using
// tidwall/sjson and tidwall/gjson. Building the document with
// sjson.SetBytes rather than encoding/json+struct tags keeps the
// on-disk shape (an array of {value, path_condition, is_return}
// objects) independent of the internal Result/SymExpr Go types, which
// matters since SymExpr is a closed interface rather than a struct
// json.Marshal could walk directly.
package jsonexport

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/see-reach/seereach/internal/evalresult"
	"github.com/see-reach/seereach/internal/hlast"
	"github.com/see-reach/seereach/internal/symexpr"
)

// EncodeResults serializes results to a JSON array, one object per
// path: {"value": <symexpr JSON>, "path_condition": [...], "is_return": bool}.
func EncodeResults(results []*evalresult.Result) ([]byte, error) {
	doc := []byte("[]")
	var err error
	for i, r := range results {
		prefix := fmt.Sprintf("%d", i)
		doc, err = sjson.SetBytes(doc, prefix+".value", symexprToJSONValue(r.Value))
		if err != nil {
			return nil, err
		}
		doc, err = sjson.SetBytes(doc, prefix+".is_return", r.IsReturn)
		if err != nil {
			return nil, err
		}
		for j, c := range r.PathCondition {
			doc, err = sjson.SetBytes(doc, fmt.Sprintf("%s.path_condition.%d", prefix, j), symexprToJSONValue(c))
			if err != nil {
				return nil, err
			}
		}
		if len(r.PathCondition) == 0 {
			doc, err = sjson.SetRawBytes(doc, prefix+".path_condition", []byte("[]"))
			if err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

// symexprToJSONValue renders a single SymExpr into a JSON-compatible
// Go value: a tagged object {"kind": ..., ...fields}. sjson.SetBytes
// accepts these directly as the value argument.
func symexprToJSONValue(e symexpr.SymExpr) map[string]interface{} {
	switch v := e.(type) {
	case symexpr.SReal:
		return map[string]interface{}{"kind": "real", "value": v.Value}
	case symexpr.SInteger:
		return map[string]interface{}{"kind": "int", "value": v.Value}
	case symexpr.SBoolean:
		return map[string]interface{}{"kind": "bool", "value": v.Value}
	case symexpr.SVariable:
		return map[string]interface{}{"kind": "var", "name": v.Name, "type": v.Type.String()}
	case symexpr.SBinaryOp:
		return map[string]interface{}{
			"kind": "binary", "op": v.Op.String(),
			"left": symexprToJSONValue(v.Left), "right": symexprToJSONValue(v.Right),
		}
	case symexpr.SUnaryOp:
		return map[string]interface{}{
			"kind": "unary", "op": v.Op.String(), "operand": symexprToJSONValue(v.Operand),
		}
	case symexpr.STuple:
		elems := make([]map[string]interface{}, len(v.Elements))
		for i, el := range v.Elements {
			elems[i] = symexprToJSONValue(el)
		}
		return map[string]interface{}{"kind": "tuple", "elements": elems}
	default:
		return map[string]interface{}{"kind": "unknown", "repr": e.String()}
	}
}

// DecodeSymExpr parses a single JSON-encoded symbolic value produced by
// symexprToJSONValue back into a symexpr.SymExpr.
func DecodeSymExpr(raw string) (symexpr.SymExpr, error) {
	result := gjson.Parse(raw)
	return decodeValue(result)
}

func decodeValue(v gjson.Result) (symexpr.SymExpr, error) {
	switch v.Get("kind").String() {
	case "real":
		return symexpr.SReal{Value: v.Get("value").Float()}, nil
	case "int":
		return symexpr.SInteger{Value: v.Get("value").Int()}, nil
	case "bool":
		return symexpr.SBoolean{Value: v.Get("value").Bool()}, nil
	case "var":
		return symexpr.SVariable{Name: v.Get("name").String(), Type: decodeType(v.Get("type").String())}, nil
	case "binary":
		left, err := decodeValue(v.Get("left"))
		if err != nil {
			return nil, err
		}
		right, err := decodeValue(v.Get("right"))
		if err != nil {
			return nil, err
		}
		return symexpr.SBinaryOp{Op: decodeOperator(v.Get("op").String()), Left: left, Right: right}, nil
	case "unary":
		operand, err := decodeValue(v.Get("operand"))
		if err != nil {
			return nil, err
		}
		return symexpr.SUnaryOp{Op: decodeOperator(v.Get("op").String()), Operand: operand}, nil
	case "tuple":
		var elems []symexpr.SymExpr
		var decodeErr error
		v.Get("elements").ForEach(func(_, el gjson.Result) bool {
			parsed, err := decodeValue(el)
			if err != nil {
				decodeErr = err
				return false
			}
			elems = append(elems, parsed)
			return true
		})
		if decodeErr != nil {
			return nil, decodeErr
		}
		return symexpr.STuple{Elements: elems}, nil
	default:
		return nil, fmt.Errorf("jsonexport: unrecognized symbolic kind %q", v.Get("kind").String())
	}
}

func decodeType(s string) hlast.Type {
	switch s {
	case "real":
		return hlast.Real
	case "int":
		return hlast.Integer
	case "bool":
		return hlast.Boolean
	case "tuple":
		return hlast.Tuple
	default:
		return hlast.Real
	}
}

var operatorByName = map[string]hlast.Operator{
	"+": hlast.Add, "-": hlast.Sub, "*": hlast.Mul, "/": hlast.Div,
	">": hlast.Greater, "<": hlast.Less, ">=": hlast.GreaterEqual, "<=": hlast.LessEqual,
	"==": hlast.Equal, "&&": hlast.And, "||": hlast.Or, "!": hlast.Not, "sin": hlast.Sin,
}

func decodeOperator(s string) hlast.Operator {
	return operatorByName[s]
}
