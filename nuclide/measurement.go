package nuclide

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerances for approximate float comparison, matching the conventions
// of the reference datasets (relative 1e-5, absolute 1e-8).
const (
	relTolerance = 1e-5
	absTolerance = 1e-8
)

// closeTo reports whether a and b are approximately equal.
func closeTo(a, b float64) bool {
	if a == b {
		return true // handles +Inf == +Inf
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= absTolerance+relTolerance*math.Abs(b)
}

// Measurement is a numeric value with an optional symmetric uncertainty.
// The zero value is 0 with no uncertainty. Measurements are immutable.
type Measurement struct {
	nominal float64
	unc     float64
	hasUnc  bool
}

// NewMeasurement returns a Measurement with no uncertainty.
func NewMeasurement(nominal float64) Measurement {
	return Measurement{nominal: nominal}
}

// NewMeasurementUnc returns a Measurement with the given uncertainty.
func NewMeasurementUnc(nominal, unc float64) Measurement {
	return Measurement{nominal: nominal, unc: unc, hasUnc: true}
}

// Value returns the nominal value.
func (m Measurement) Value() float64 { return m.nominal }

// Uncertainty returns the symmetric uncertainty, if one was measured.
func (m Measurement) Uncertainty() (float64, bool) { return m.unc, m.hasUnc }

// Equivalent reports whether two measurements agree: nominal values and
// uncertainties are each approximately equal.
func (m Measurement) Equivalent(o Measurement) bool {
	if m.hasUnc != o.hasUnc {
		return false
	}
	return closeTo(m.nominal, o.nominal) && closeTo(m.unc, o.unc)
}

// Div returns m scaled by 1/d. The uncertainty, if present, scales too.
func (m Measurement) Div(d float64) Measurement {
	return Measurement{nominal: m.nominal / d, unc: m.unc / d, hasUnc: m.hasUnc}
}

// String renders the value, appending "+/-" and the uncertainty when
// one is present.
func (m Measurement) String() string {
	if !m.hasUnc {
		return strconv.FormatFloat(m.nominal, 'g', -1, 64)
	}
	return fmt.Sprintf("%g+/-%g", m.nominal, m.unc)
}

// ParseConcise parses concise scientific notation, where the digits in
// parentheses are the one-sigma uncertainty expressed in units of the
// last decimal place: "1.00782503207(10)" means 1.00782503207 with an
// uncertainty of 0.00000000010. A trailing "#" (value estimated from
// systematics) is tolerated and stripped. Input without parentheses
// parses as a plain value with no uncertainty.
func ParseConcise(s string) (Measurement, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "#"))
	if s == "" {
		return Measurement{}, fmt.Errorf("empty measurement")
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Measurement{}, fmt.Errorf("bad measurement %q: %w", s, err)
		}
		return NewMeasurement(v), nil
	}

	closing := strings.IndexByte(s, ')')
	if closing < open {
		return Measurement{}, fmt.Errorf("bad measurement %q: unbalanced parentheses", s)
	}

	numPart := s[:open]
	uncPart := s[open+1 : closing]

	v, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return Measurement{}, fmt.Errorf("bad measurement %q: %w", s, err)
	}
	uncDigits, err := strconv.ParseFloat(uncPart, 64)
	if err != nil {
		return Measurement{}, fmt.Errorf("bad uncertainty in %q: %w", s, err)
	}

	// The uncertainty applies to the last decimal place of the number.
	decimals := 0
	if dot := strings.IndexByte(numPart, '.'); dot >= 0 {
		decimals = len(numPart) - dot - 1
	}
	unc := uncDigits * math.Pow(10, -float64(decimals))

	return NewMeasurementUnc(v, unc), nil
}
