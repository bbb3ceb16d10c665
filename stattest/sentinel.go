// This file implements the two not-a-result sentinels: Invalid, for tests
// that could not be computed, and Inapplicable, for tests that do not apply
// to the model specification. Both satisfy Result with NaN statistics so a
// caller holding a Result never needs a special case to stay total.
package stattest

import (
	"fmt"
	"math"
	"strings"

	"github.com/quantfold/statkit/attrmap"
)

// DefaultInapplicableReason is used when an Inapplicable result is built
// without WithReason.
const DefaultInapplicableReason = "test is not applicable to model specification"

// Invalid marks a test that could not be computed. Stat and PVal are NaN,
// CriticalValues is nil, and the reason explains the failure.
type Invalid struct {
	reason string
	name   string
}

// NewInvalid builds an Invalid result carrying reason.
// Errors: ErrNoReason when reason is empty.
func NewInvalid(reason string, opts ...Option) (*Invalid, error) {
	if reason == "" {
		return nil, ErrNoReason
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Invalid{reason: reason, name: cfg.name}, nil
}

// Stat returns NaN: no statistic exists.
func (iv *Invalid) Stat() float64 { return math.NaN() }

// PVal returns NaN: no p-value exists.
func (iv *Invalid) PVal() float64 { return math.NaN() }

// Null returns the empty string: no null hypothesis was tested.
func (iv *Invalid) Null() string { return "" }

// Name returns the test label, empty when unset.
func (iv *Invalid) Name() string { return iv.name }

// Reason explains why the test could not be computed.
func (iv *Invalid) Reason() string { return iv.reason }

// CriticalValues returns nil: no reference distribution applies.
func (iv *Invalid) CriticalValues() *attrmap.Map { return nil }

// String renders the sentinel with its reason.
func (iv *Invalid) String() string {
	var b strings.Builder
	if iv.name != "" {
		b.WriteString(iv.name)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Invalid test statistic\n%s", iv.reason)

	return b.String()
}

// Inapplicable marks a test that does not apply to the model specification.
// Stat and PVal are NaN and CriticalValues is nil.
type Inapplicable struct {
	reason string
	name   string
}

// NewInapplicable builds an Inapplicable result. WithReason overrides the
// default reason; WithName labels the test.
func NewInapplicable(opts ...Option) *Inapplicable {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.reason == "" {
		cfg.reason = DefaultInapplicableReason
	}

	return &Inapplicable{reason: cfg.reason, name: cfg.name}
}

// Stat returns NaN: no statistic exists.
func (ia *Inapplicable) Stat() float64 { return math.NaN() }

// PVal returns NaN: no p-value exists.
func (ia *Inapplicable) PVal() float64 { return math.NaN() }

// Null returns the empty string: no null hypothesis was tested.
func (ia *Inapplicable) Null() string { return "" }

// Name returns the test label, empty when unset.
func (ia *Inapplicable) Name() string { return ia.name }

// Reason explains why the test does not apply.
func (ia *Inapplicable) Reason() string { return ia.reason }

// CriticalValues returns nil: no reference distribution applies.
func (ia *Inapplicable) CriticalValues() *attrmap.Map { return nil }

// String renders the sentinel with its reason; the default reason keeps the
// conventional "not applicable" wording.
func (ia *Inapplicable) String() string {
	var b strings.Builder
	if ia.name != "" {
		b.WriteString(ia.name)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Irrelevant test statistic\n%s", ia.reason)

	return b.String()
}
