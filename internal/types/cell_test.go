package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func decodeCell(t *testing.T, data string) Value {
	t.Helper()
	var v Value
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return v
}

func TestValue_IntCell(t *testing.T) {
	t.Parallel()
	v := decodeCell(t, `{"Num":{"Int":42}}`)
	if v.Type() != CellInt {
		t.Fatalf("type = %s, want Int", v.Type())
	}
	if v.Interface() != int64(42) {
		t.Fatalf("value = %#v, want int64(42)", v.Interface())
	}
}

func TestValue_FloatCell(t *testing.T) {
	t.Parallel()
	v := decodeCell(t, `{"Num":{"Float":2.5}}`)
	if v.Type() != CellFloat || v.Interface() != 2.5 {
		t.Fatalf("got %s %#v, want Float 2.5", v.Type(), v.Interface())
	}
}

func TestValue_StrCell(t *testing.T) {
	t.Parallel()
	v := decodeCell(t, `{"Str":"Item 1"}`)
	if v.Type() != CellStr || v.Interface() != "Item 1" {
		t.Fatalf("got %s %#v, want Str Item 1", v.Type(), v.Interface())
	}
}

func TestValue_BoolCell(t *testing.T) {
	t.Parallel()
	v := decodeCell(t, `{"Bool":true}`)
	if v.Type() != CellBool || v.Interface() != true {
		t.Fatalf("got %s %#v, want Bool true", v.Type(), v.Interface())
	}
}

func TestValue_UuidCell(t *testing.T) {
	t.Parallel()
	id := uuid.MustParse("3ea7a8b3-93b4-44d1-b18e-f0a5b76ae31c")
	v := decodeCell(t, `{"Uuid":"3ea7a8b3-93b4-44d1-b18e-f0a5b76ae31c"}`)
	if v.Type() != CellUuid {
		t.Fatalf("type = %s, want Uuid", v.Type())
	}
	if v.Interface() != id {
		t.Fatalf("value = %#v, want %v", v.Interface(), id)
	}
}

func TestValue_UuidCell_Malformed(t *testing.T) {
	t.Parallel()
	// The service never guarantees well-formed UUID text; keep the raw string.
	v := decodeCell(t, `{"Uuid":"not-a-uuid"}`)
	if v.Type() != CellUuid || v.Interface() != "not-a-uuid" {
		t.Fatalf("got %s %#v, want Uuid not-a-uuid", v.Type(), v.Interface())
	}
}

func TestValue_JsonCell(t *testing.T) {
	t.Parallel()
	v := decodeCell(t, `{"Json":{"k":"v"}}`)
	if v.Type() != CellJson {
		t.Fatalf("type = %s, want Json", v.Type())
	}
	m, ok := v.Interface().(map[string]any)
	if !ok || m["k"] != "v" {
		t.Fatalf("value = %#v, want map with k=v", v.Interface())
	}
}

func TestValue_ListCell_Nested(t *testing.T) {
	t.Parallel()
	v := decodeCell(t, `{"List":[{"Num":{"Int":1}},{"List":[{"Str":"x"}]}]}`)
	if v.Type() != CellList {
		t.Fatalf("type = %s, want List", v.Type())
	}
	items, ok := v.Interface().([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("value = %#v, want two items", v.Interface())
	}
	if items[0] != int64(1) {
		t.Fatalf("items[0] = %#v, want int64(1)", items[0])
	}
	inner, ok := items[1].([]any)
	if !ok || len(inner) != 1 || inner[0] != "x" {
		t.Fatalf("items[1] = %#v, want nested [x]", items[1])
	}
}

func TestValue_PlainScalar(t *testing.T) {
	t.Parallel()
	v := decodeCell(t, `7`)
	if v.Type() != CellUnknown {
		t.Fatalf("type = %s, want Unknown", v.Type())
	}
	if v.String() != "7" {
		t.Fatalf("display = %q, want 7", v.String())
	}
}

func TestValue_UnrecognisedObject(t *testing.T) {
	t.Parallel()
	v := decodeCell(t, `{"Widget": 3}`)
	if v.Type() != CellUnknown {
		t.Fatalf("type = %s, want Unknown", v.Type())
	}
	if v.String() != `{"Widget":3}` {
		t.Fatalf("display = %q", v.String())
	}
}

func TestValue_MarshalSimplified(t *testing.T) {
	t.Parallel()
	v := decodeCell(t, `{"Num":{"Int":42}}`)
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "42" {
		t.Fatalf("marshal = %s, want 42", out)
	}
}
