package pet

import (
	"math"
	"strconv"
	"strings"
)

// Number is a numeric form field. It keeps the text the designer typed next
// to its numeric reading; text that does not parse reads as zero.
type Number struct {
	Raw   string  `json:"raw"`
	Value float64 `json:"value"`
}

// ParseNumber reads raw leniently. Blank or non-numeric text yields zero.
func ParseNumber(raw string) Number {
	n := Number{Raw: raw}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		n.Value = v
	}
	return n
}

// NumberOf wraps an integer as a Number
func NumberOf(v int) Number {
	return Number{Raw: strconv.Itoa(v), Value: float64(v)}
}

// Int truncates the numeric reading toward zero
func (n Number) Int() int {
	return int(n.Value)
}

// String returns the raw text
func (n Number) String() string {
	return n.Raw
}

// ParseInt reads raw leniently as an integer
func ParseInt(raw string) int {
	return ParseNumber(raw).Int()
}
