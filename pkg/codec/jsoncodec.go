// pkg/codec/jsoncodec.go
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	ContentTypeJSON   = "application/json"
	ContentTypeNDJSON = "application/x-ndjson"
)

var (
	ErrNotArray  = errors.New("json: expected an array")
	ErrNotObject = errors.New("json: expected an object")
	ErrNotNumber = errors.New("json: expected a number")
)

// DecodeArray splits a JSON array into its raw elements. Trailing content after
// the array is an error.
func DecodeArray(data []byte) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	// Probe for trailing data (must be EOF)
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("json trailing content")
	}
	if firstByte(raw) != '[' {
		return nil, ErrNotArray
	}
	var out []json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	if out == nil {
		out = []json.RawMessage{}
	}
	return out, nil
}

// DecodeObject splits a JSON object into its raw members.
func DecodeObject(raw json.RawMessage) (map[string]json.RawMessage, error) {
	if firstByte(raw) != '{' {
		return nil, ErrNotObject
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	return out, nil
}

// ParseNumber reads a JSON number token. Strings, booleans and null are rejected.
func ParseNumber(raw json.RawMessage) (float64, error) {
	switch c := firstByte(raw); {
	case c == '-' || (c >= '0' && c <= '9'):
	default:
		return 0, ErrNotNumber
	}
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), 64)
	if err != nil {
		return 0, fmt.Errorf("json number: %w", err)
	}
	return f, nil
}

func firstByte(raw []byte) byte {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}
