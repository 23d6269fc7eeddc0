package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeydtaylor/steeze-calc/pkg/codec"
)

// Value is one input record.
type Value struct {
	X float64 `json:"x"`
}

// Issue type codes, in the pydantic v1 vocabulary FastAPI clients expect.
const (
	IssueJSONDecode = "value_error.jsondecode"
	IssueList       = "type_error.list"
	IssueDict       = "type_error.dict"
	IssueMissing    = "value_error.missing"
	IssueFloat      = "type_error.float"
)

// Issue is a single validation failure. Loc follows the FastAPI layout,
// e.g. ["body", 2, "x"].
type Issue struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// ValidationError lists every issue found in a request body.
type ValidationError struct {
	Issues []Issue `json:"detail"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, fmt.Sprintf("%v: %s", is.Loc, is.Msg))
	}
	return "invalid body: " + strings.Join(parts, "; ")
}

// ParseValues validates data as a JSON array of {"x": <number>} objects.
// Unknown members are ignored. All element issues are collected before returning.
// A non-nil error is always a *ValidationError.
func ParseValues(data []byte) ([]Value, error) {
	elems, err := codec.DecodeArray(data)
	if err != nil {
		is := Issue{Loc: []any{"body"}, Msg: err.Error(), Type: IssueJSONDecode}
		if errors.Is(err, codec.ErrNotArray) {
			is.Msg, is.Type = "value is not a valid list", IssueList
		}
		return nil, &ValidationError{Issues: []Issue{is}}
	}

	out := make([]Value, 0, len(elems))
	var issues []Issue
	for i, raw := range elems {
		obj, err := codec.DecodeObject(raw)
		if err != nil {
			issues = append(issues, Issue{Loc: []any{"body", i}, Msg: "value is not a valid dict", Type: IssueDict})
			continue
		}
		xraw, ok := obj["x"]
		if !ok {
			issues = append(issues, Issue{Loc: []any{"body", i, "x"}, Msg: "field required", Type: IssueMissing})
			continue
		}
		x, err := codec.ParseNumber(xraw)
		if err != nil {
			issues = append(issues, Issue{Loc: []any{"body", i, "x"}, Msg: "value is not a valid float", Type: IssueFloat})
			continue
		}
		out = append(out, Value{X: x})
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return out, nil
}
