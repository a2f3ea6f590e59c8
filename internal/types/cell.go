package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// CellType names the declared type of a result cell.
type CellType string

const (
	CellInt     CellType = "Int"
	CellFloat   CellType = "Float"
	CellStr     CellType = "Str"
	CellBool    CellType = "Bool"
	CellUuid    CellType = "Uuid"
	CellJson    CellType = "Json"
	CellList    CellType = "List"
	CellUnknown CellType = "Unknown"
)

// Value is one cell of a result row. The server encodes typed cells as
// single-key union objects ({"Num":{"Int":1}}, {"Str":"x"}, {"Bool":true},
// {"Uuid":"..."}, {"Json":...}, {"List":[...]}); anything else arrives as a
// plain JSON value and is reported as Unknown. Value decodes the union into
// the simplified Go value plus its type name.
type Value struct {
	val any
	typ CellType
}

// NewValue builds a Value directly; used by tests and by List recursion.
func NewValue(v any, t CellType) Value { return Value{val: v, typ: t} }

// Interface returns the simplified Go value of the cell.
func (v Value) Interface() any { return v.val }

// Type returns the cell's type name.
func (v Value) Type() CellType { return v.typ }

// String renders the simplified value for display.
func (v Value) String() string {
	if v.val == nil {
		return ""
	}
	return fmt.Sprint(v.val)
}

// MarshalJSON emits the simplified value, mirroring the service's
// "exclude types" rendering of rows.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.val)
}

// UnmarshalJSON decodes a wire cell into its simplified value and type.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty cell")
	}
	if trimmed[0] != '{' {
		return v.decodePlain(trimmed)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return err
	}

	if raw, ok := obj["Num"]; ok {
		return v.decodeNum(raw)
	}
	if raw, ok := obj["Str"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		v.val, v.typ = s, CellStr
		return nil
	}
	if raw, ok := obj["Bool"]; ok {
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return err
		}
		v.val, v.typ = b, CellBool
		return nil
	}
	if raw, ok := obj["Uuid"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		// The service never guarantees well-formed UUID text; keep the raw
		// string when parsing fails.
		if id, err := uuid.Parse(s); err == nil {
			v.val = id
		} else {
			v.val = s
		}
		v.typ = CellUuid
		return nil
	}
	if raw, ok := obj["Json"]; ok {
		var inner any
		if err := json.Unmarshal(raw, &inner); err != nil {
			return err
		}
		v.val, v.typ = inner, CellJson
		return nil
	}
	if raw, ok := obj["List"]; ok {
		var items []Value
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		simplified := make([]any, len(items))
		for i, item := range items {
			simplified[i] = item.Interface()
		}
		v.val, v.typ = simplified, CellList
		return nil
	}

	// Object with no recognised variant: keep its compact text.
	v.val, v.typ = string(compact(trimmed)), CellUnknown
	return nil
}

func (v *Value) decodeNum(raw json.RawMessage) error {
	var num map[string]json.RawMessage
	if err := json.Unmarshal(raw, &num); err != nil {
		return err
	}
	if inner, ok := num["Int"]; ok {
		var n int64
		if err := json.Unmarshal(inner, &n); err != nil {
			return err
		}
		v.val, v.typ = n, CellInt
		return nil
	}
	if inner, ok := num["Float"]; ok {
		var f float64
		if err := json.Unmarshal(inner, &f); err != nil {
			return err
		}
		v.val, v.typ = f, CellFloat
		return nil
	}
	v.val, v.typ = string(compact(raw)), CellUnknown
	return nil
}

// decodePlain handles cells the server sends untagged. Numbers keep their
// textual form via json.Number so integer cells do not render as floats.
func (v *Value) decodePlain(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var plain any
	if err := dec.Decode(&plain); err != nil {
		return err
	}
	v.val, v.typ = plain, CellUnknown
	return nil
}

func compact(data []byte) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return data
	}
	return buf.Bytes()
}
