// Package scaleexpr parses scaling expressions like "+50%", "-2" or "3" and
// applies them to a current replica count.
package scaleexpr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/giantswarm/microerror"
)

// Kind tells which kind of change an Expression describes.
type Kind int

const (
	// Absolute sets the replica count to a fixed value.
	Absolute Kind = iota
	// Relative adds a (possibly negative) delta to the replica count.
	Relative
	// Percentage changes the replica count by a percentage of itself.
	Percentage
)

func (k Kind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	case Percentage:
		return "percentage"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Expression is a parsed scaling expression. The zero value is an absolute
// expression setting the replica count to 0.
type Expression struct {
	kind Kind

	// replicas is the fixed count of an Absolute expression.
	replicas int
	// delta is the additive change of a Relative expression.
	delta int
	// percent is the signed percentage of a Percentage expression,
	// e.g. 50 for "+50%" and -100 for "-100%".
	percent float64
}

// NewAbsolute returns an expression that ignores the current replica count
// and always yields n.
func NewAbsolute(n int) Expression {
	return Expression{kind: Absolute, replicas: n}
}

// NewRelative returns an expression adding delta to the current count.
func NewRelative(delta int) Expression {
	return Expression{kind: Relative, delta: delta}
}

// NewPercentage returns an expression changing the current count by
// percent percent.
func NewPercentage(percent float64) Expression {
	return Expression{kind: Percentage, percent: percent}
}

// Parse interprets token as a scaling expression. The second return value is
// false if token is not a scaling expression at all, which is not an error.
//
// Accepted forms are an optional sign followed by either an integer ("+2",
// "-2", "2") or a decimal number with a percent sign ("+50%", "-12.5%").
func Parse(token string) (Expression, bool) {
	direction := 1
	unsigned := token
	if strings.HasPrefix(token, "-") {
		direction = -1
		unsigned = token[1:]
	} else if strings.HasPrefix(token, "+") {
		unsigned = token[1:]
	}

	if !startsWithDigitOrDot(unsigned) {
		return Expression{}, false
	}

	if strings.HasSuffix(unsigned, "%") {
		magnitude, err := strconv.ParseFloat(strings.TrimSuffix(unsigned, "%"), 64)
		if err != nil || math.IsInf(magnitude, 0) || math.IsNaN(magnitude) {
			return Expression{}, false
		}
		return NewPercentage(float64(direction) * magnitude), true
	}

	magnitude, err := strconv.ParseUint(unsigned, 10, 31)
	if err != nil {
		return Expression{}, false
	}

	return NewRelative(direction * int(magnitude)), true
}

// startsWithDigitOrDot rejects a second sign, "inf", "nan" and the empty
// string before the numeric parsers see them.
func startsWithDigitOrDot(s string) bool {
	if s == "" {
		return false
	}
	return s[0] == '.' || (s[0] >= '0' && s[0] <= '9')
}

// Kind returns the kind of change e describes.
func (e Expression) Kind() Kind {
	return e.kind
}

// Factor returns the multiplicative factor applied to the current count.
// It is 1 for absolute and relative expressions.
func (e Expression) Factor() float64 {
	if e.kind != Percentage {
		return 1
	}
	return (100 + e.percent) / 100
}

// Apply returns the replica count resulting from applying e to current.
//
// Percentage results are rounded towards negative infinity. A result outside
// the int32 range gives OutOfRangeError. Negative results within the range
// are returned as they are.
func (e Expression) Apply(current int) (int, error) {
	var result float64
	switch e.kind {
	case Absolute:
		result = float64(e.replicas)
	case Relative:
		result = float64(current) + float64(e.delta)
	case Percentage:
		result = math.Floor(float64(current) * (100 + e.percent) / 100)
	default:
		result = float64(current)
	}

	if result < math.MinInt32 || result > math.MaxInt32 {
		return 0, microerror.Maskf(OutOfRangeError, "%s applied to %d replicas gives %g, maximum is %d", e, current, result, math.MaxInt32)
	}

	return int(result), nil
}

// String renders e in the syntax accepted by Parse. Absolute expressions are
// prefixed with "=".
func (e Expression) String() string {
	switch e.kind {
	case Absolute:
		return fmt.Sprintf("=%d", e.replicas)
	case Relative:
		return fmt.Sprintf("%+d", e.delta)
	case Percentage:
		s := strconv.FormatFloat(e.percent, 'f', -1, 64) + "%"
		if !strings.HasPrefix(s, "-") {
			s = "+" + s
		}
		return s
	}
	return ""
}
