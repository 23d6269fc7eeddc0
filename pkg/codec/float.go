package codec

import (
	"strconv"
	"strings"
)

// AppendFloat appends f the way Python's repr prints floats: fixed notation
// with at least one fractional digit for decimal exponents in [-4, 16),
// shortest scientific notation otherwise.
//
// With integral set, f is assumed integer valued and printed as an integer.
func AppendFloat(dst []byte, f float64, integral bool) []byte {
	if integral {
		if f == 0 {
			f = 0 // drop the sign of -0
		}
		return strconv.AppendFloat(dst, f, 'f', 0, 64)
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return append(dst, sci...)
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'f', -1, 64)
	if strings.IndexByte(string(dst[start:]), '.') < 0 {
		dst = append(dst, '.', '0')
	}
	return dst
}
