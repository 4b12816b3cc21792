package value

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is a JSON number holding its exact source literal. Integers and
// floats share this type; the literal is never reformatted, so a number
// survives any number of parse/serialize round trips unchanged.
type Number string

func (Number) value()           {}
func (Number) Kind() Kind       { return NumberKind }
func (n Number) String() string { return string(n) }

// MarshalJSON returns the literal as-is.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n), nil
}

// Int returns the Number for i.
func Int(i int64) Number {
	return Number(strconv.FormatInt(i, 10))
}

// Uint returns the Number for u.
func Uint(u uint64) Number {
	return Number(strconv.FormatUint(u, 10))
}

// Float returns the shortest Number literal that parses back to f. The
// literal always carries a fraction or exponent, so Float(2) is "2.0" and
// stays distinguishable from Int(2).
//
// NaN and infinities have no JSON representation; the resulting literal
// is rejected when serialized.
func Float(f float64) Number {
	return formatFloat(f, 64)
}

// Float32 is like Float but picks the shortest literal that parses back to
// the float32 f, so Float32(0.1) is "0.1".
func Float32(f float32) Number {
	return formatFloat(float64(f), 32)
}

func formatFloat(f float64, bitSize int) Number {
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number(s)
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return Number(s)
}

// IsInteger reports whether the literal has neither a fraction nor an
// exponent.
func (n Number) IsInteger() bool {
	return n != "" && !strings.ContainsAny(string(n), ".eE")
}

// Int64 returns the literal as an int64.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 returns the literal as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// ExactFloat64 returns the literal as a float64 and reports whether the
// conversion is lossless, meaning the shortest formatting of the float
// denotes the same decimal value as the literal.
func (n Number) ExactFloat64() (float64, bool) {
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	want, ok := new(big.Rat).SetString(string(n))
	if !ok {
		return 0, false
	}
	got, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		return 0, false
	}
	return f, want.Cmp(got) == 0
}
