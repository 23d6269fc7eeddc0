package codec

import (
	"encoding/json"
	"io"
)

// Field describes one numeric member of an encoded record.
type Field struct {
	Key      string
	Integral bool
}

// RecordEncoder writes flat objects of numeric members as compact JSON, one
// per line, in the field order given to NewRecordEncoder.
type RecordEncoder struct {
	keys   [][]byte
	fields []Field
	buf    []byte
}

func NewRecordEncoder(fields ...Field) *RecordEncoder {
	e := &RecordEncoder{fields: fields, keys: make([][]byte, len(fields))}
	for i, f := range fields {
		k, _ := json.Marshal(f.Key) // marshaling a string cannot fail
		e.keys[i] = append(k, ':')
	}
	return e
}

// AppendLine appends one record followed by '\n'. values pair up with the
// encoder's fields; a length mismatch panics.
func (e *RecordEncoder) AppendLine(dst []byte, values ...float64) []byte {
	if len(values) != len(e.fields) {
		panic("codec: record value count mismatch")
	}
	dst = append(dst, '{')
	for i, v := range values {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, e.keys[i]...)
		dst = AppendFloat(dst, v, e.fields[i].Integral)
	}
	return append(dst, '}', '\n')
}

// WriteLine encodes one record into w, reusing an internal buffer.
// Not safe for concurrent use.
func (e *RecordEncoder) WriteLine(w io.Writer, values ...float64) (int, error) {
	e.buf = e.AppendLine(e.buf[:0], values...)
	return w.Write(e.buf)
}
