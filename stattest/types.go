// This file declares the Result interface, construction options and
// sentinel errors for the stattest package.
package stattest

import (
	"errors"
	"fmt"

	"github.com/quantfold/statkit/attrmap"
)

// Sentinel errors for test-result construction.
var (
	// ErrInvalidDF indicates non-positive degrees of freedom (numerator or
	// denominator).
	ErrInvalidDF = errors.New("stattest: degrees of freedom must be positive")

	// ErrNoReason indicates an Invalid result constructed without a reason.
	ErrNoReason = errors.New("stattest: a reason is required")
)

// Result is the uniform surface of every test outcome. The sentinel
// variants (Invalid, Inapplicable) report NaN for Stat and PVal and a nil
// critical-value container.
type Result interface {
	fmt.Stringer

	// Stat is the test statistic.
	Stat() float64

	// PVal is the probability of observing a statistic at least as extreme
	// under the null.
	PVal() float64

	// Null is the null hypothesis the statistic tests.
	Null() string

	// CriticalValues holds the named critical values of the reference
	// distribution, or nil when no distribution applies.
	CriticalValues() *attrmap.Map
}

// config collects optional construction parameters. fDenomSet records that
// WithFDenom was supplied at all, so an explicit zero is distinguishable
// from the option being absent and can be rejected.
type config struct {
	name      string
	fDenom    int
	fDenomSet bool
	reason    string
}

// Option configures result construction.
type Option func(*config)

// WithName labels the test; the label leads the string form.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithFDenom sets the denominator degrees of freedom, switching the Wald
// reference distribution from chi-squared(df) to F(df, denom). A
// non-positive denom is rejected by NewWald with ErrInvalidDF.
func WithFDenom(denom int) Option {
	return func(c *config) {
		c.fDenom = denom
		c.fDenomSet = true
	}
}

// WithReason overrides the default reason of an Inapplicable result.
func WithReason(reason string) Option {
	return func(c *config) { c.reason = reason }
}
