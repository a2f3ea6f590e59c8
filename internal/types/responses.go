package types

import (
	"encoding/json"
	"fmt"
)

// ------------------------------
// Response Types
// ------------------------------

// ErrEmptyResponse is returned when the server replies with an empty body.
var ErrEmptyResponse = fmt.Errorf("empty response from server")

// Result is a decoded read-query response. Headers and Rows are populated
// when the body carries the tabular "headers"/"rows" shape; Raw always holds
// the untouched body, whose shape is otherwise server-defined.
type Result struct {
	Headers []string        `json:"headers"`
	Rows    [][]Value       `json:"rows"`
	Raw     json.RawMessage `json:"-"`
}

// ParseResult decodes data into a Result. A body without both "headers" and
// "rows" is not an error; the caller gets a Result with only Raw set.
func ParseResult(data json.RawMessage) (*Result, error) {
	res := &Result{Raw: data}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return res, nil
	}
	rawHeaders, okH := probe["headers"]
	rawRows, okR := probe["rows"]
	if !okH || !okR {
		return res, nil
	}

	if err := json.Unmarshal(rawHeaders, &res.Headers); err != nil {
		return nil, fmt.Errorf("decode headers: %w", err)
	}
	if err := json.Unmarshal(rawRows, &res.Rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return res, nil
}

// IsTabular reports whether the response carried the headers/rows shape.
func (r *Result) IsTabular() bool { return r.Headers != nil }

// TypedHeaders annotates each header with the cell type observed in the
// first row, e.g. "id (Int)". With no rows the headers are returned as-is.
func (r *Result) TypedHeaders() []string {
	if len(r.Rows) == 0 {
		return r.Headers
	}
	first := r.Rows[0]
	out := make([]string, len(r.Headers))
	for i, h := range r.Headers {
		if i < len(first) {
			out[i] = fmt.Sprintf("%s (%s)", h, first[i].Type())
		} else {
			out[i] = h
		}
	}
	return out
}
