package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type irBase struct {
	Type        Type     `json:"type"`
	Name        string   `json:"name,omitempty"`
	Params      []*Node  `json:"params,omitempty"`
	Fields      []*Node  `json:"fields,omitempty"`
	Values      []*Node  `json:"values,omitempty"`
	Number      string   `json:"number,omitempty"`
	Float64     *float64 `json:"float,omitempty"`
	Int64       *int64   `json:"int,omitempty"`
	Unbracketed bool     `json:"unbracketed,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:        y.Type,
		Name:        y.Name,
		Params:      y.Params,
		Fields:      y.Fields,
		Values:      y.Values,
		Number:      y.Number,
		Float64:     y.Float64,
		Int64:       y.Int64,
		Unbracketed: y.Unbracketed,
	}
	// json has no spelling for non finite numbers
	if f := y.Float64; f != nil && (math.IsInf(*f, 0) || math.IsNaN(*f)) {
		base.Float64 = nil
		base.Number = strconv.FormatFloat(*f, 'g', -1, 64)
	}
	if !y.Type.IsLeaf() && base.Values == nil {
		base.Values = []*Node{}
	}
	switch y.Type {
	case StringType, StringNameType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	*y = Node{
		Type:        tmp.Type,
		Name:        tmp.Name,
		Params:      tmp.Params,
		Fields:      tmp.Fields,
		Values:      tmp.Values,
		String:      tmp.String,
		Bool:        tmp.Bool,
		Number:      tmp.Number,
		Float64:     tmp.Float64,
		Int64:       tmp.Int64,
		Unbracketed: tmp.Unbracketed,
	}
	switch y.Number {
	case "+Inf", "-Inf", "NaN":
		f, _ := strconv.ParseFloat(y.Number, 64)
		y.Float64 = &f
		y.Number = ""
	}
	switch y.Type {
	case DictType, TypedDictType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("%s with %d keys and %d values", y.Type, len(y.Fields), len(y.Values))
		}
	case NumberType:
		if y.Int64 == nil && y.Float64 == nil && y.Number == "" {
			return fmt.Errorf("number without value")
		}
	}
	return nil
}
