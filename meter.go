package avgmeter

import (
	"fmt"
	"math"
	"strconv"
)

// Meter computes and stores the current value and the running average
// of a series of weighted observations. The zero Meter is empty and
// ready to use.
//
// A Meter is a plain value with no internal locking; callers sharing
// one across goroutines must synchronize around it.
type Meter struct {
	val   float64
	n     float64
	sum   float64
	count float64
}

// NewMeter returns an empty Meter.
func NewMeter() *Meter {
	return &Meter{}
}

// Reset returns the meter to its initial empty state. Idempotent.
func (m *Meter) Reset() {
	*m = Meter{}
}

// Update records value as the current observation with weight n
// (e.g. a batch size). The cumulative sum takes the raw value and the
// cumulative count takes the weight; no validation is done on either.
func (m *Meter) Update(value, n float64) {
	m.val = value
	m.n = n
	m.sum += value
	m.count += n
}

// UpdateValue is Update with weight 1.
func (m *Meter) UpdateValue(value float64) {
	m.Update(value, 1)
}

// Value returns the current observation divided by its weight, or NaN
// if nothing was recorded since the last reset.
func (m *Meter) Value() float64 {
	if m.n == 0 {
		return math.NaN()
	}
	return m.val / m.n
}

// Average returns the running average since the last reset, or NaN if
// nothing was recorded. It is the cumulative sum over the cumulative
// count, so with non-unit weights it is not a weighted mean.
func (m *Meter) Average() float64 {
	if m.count == 0 {
		return math.NaN()
	}
	return m.sum / m.count
}

// Sum returns the cumulative sum of recorded values.
func (m *Meter) Sum() float64 {
	return m.sum
}

// Count returns the cumulative weight of recorded observations.
func (m *Meter) Count() float64 {
	return m.count
}

// Format renders the meter as "current (average)", applying the
// caller's verb, flags, width and precision to both numbers:
//
//	fmt.Sprintf("%.2f", m) // "0.90 (0.80)"
func (m *Meter) Format(f fmt.State, verb rune) {
	spec := restate(f, verb)
	fmt.Fprintf(f, spec+" ("+spec+")", m.Value(), m.Average())
}

func (m *Meter) String() string {
	return fmt.Sprintf("%v", m)
}

// restate rebuilds the single-number format spec from fmt's state.
func restate(f fmt.State, verb rune) string {
	spec := "%"
	for _, flag := range "+-# 0" {
		if f.Flag(int(flag)) {
			spec += string(flag)
		}
	}
	if w, ok := f.Width(); ok {
		spec += strconv.Itoa(w)
	}
	if p, ok := f.Precision(); ok {
		spec += "." + strconv.Itoa(p)
	}
	return spec + string(verb)
}
