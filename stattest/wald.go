package stattest

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quantfold/statkit/attrmap"
)

// Critical-value keys and their distribution quantiles. The keys are the
// item-style names under which Wald publishes its critical values.
var criticalLevels = []struct {
	key string
	p   float64
}{
	{key: "10%", p: 0.90},
	{key: "5%", p: 0.95},
	{key: "1%", p: 0.99},
}

// nullDist is the slice of the distuv surface a Wald result needs.
type nullDist interface {
	CDF(x float64) float64
	Quantile(p float64) float64
}

// Wald is an immutable Wald test statistic. With only the numerator degrees
// of freedom the reference distribution is chi-squared(df); with a
// denominator (WithFDenom) it is F(df, denom).
//
// The p-value and critical values are fixed at construction; accessors
// never mutate the receiver.
type Wald struct {
	stat   float64
	null   string
	name   string
	df     int
	fDenom int // 0 when the reference distribution is chi-squared
	pval   float64
	crit   *attrmap.Map
}

// NewWald builds a Wald test result for stat against null with df numerator
// degrees of freedom.
//
// Options:
//   - WithFDenom(d) — use an F(df, d) reference distribution.
//   - WithName(s)   — label the test.
//
// Errors:
//   - ErrInvalidDF — df < 1, or WithFDenom with a non-positive denominator.
func NewWald(stat float64, null string, df int, opts ...Option) (*Wald, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if df < 1 {
		return nil, ErrInvalidDF
	}
	if cfg.fDenomSet && cfg.fDenom < 1 {
		return nil, ErrInvalidDF
	}

	var dist nullDist
	if cfg.fDenom > 0 {
		dist = distuv.F{D1: float64(df), D2: float64(cfg.fDenom)}
	} else {
		dist = distuv.ChiSquared{K: float64(df)}
	}

	// The critical-value container is built key-by-key in level order; the
	// keys are ordinary item-style entries, so insertion order is the
	// presentation order.
	crit := attrmap.New()
	for _, level := range criticalLevels {
		if err := crit.Set(level.key, dist.Quantile(level.p)); err != nil {
			return nil, err
		}
	}

	return &Wald{
		stat:   stat,
		null:   null,
		name:   cfg.name,
		df:     df,
		fDenom: cfg.fDenom,
		pval:   1 - dist.CDF(stat),
		crit:   crit,
	}, nil
}

// Stat returns the test statistic.
func (w *Wald) Stat() float64 { return w.stat }

// PVal returns the right-tail p-value of the statistic.
func (w *Wald) PVal() float64 { return w.pval }

// Null returns the null hypothesis under test.
func (w *Wald) Null() string { return w.null }

// Name returns the test label, empty when unset.
func (w *Wald) Name() string { return w.name }

// DF returns the numerator degrees of freedom.
func (w *Wald) DF() int { return w.df }

// FDenom returns the denominator degrees of freedom and whether the
// reference distribution is F.
func (w *Wald) FDenom() (int, bool) { return w.fDenom, w.fDenom > 0 }

// DistName names the reference distribution, e.g. "chi2(1)" or "F(1,1000)".
func (w *Wald) DistName() string {
	if w.fDenom > 0 {
		return fmt.Sprintf("F(%d,%d)", w.df, w.fDenom)
	}

	return fmt.Sprintf("chi2(%d)", w.df)
}

// CriticalValues returns the 10%/5%/1% critical values of the reference
// distribution, keyed by level, in level order.
func (w *Wald) CriticalValues() *attrmap.Map { return w.crit }

// String renders the result for reports: optional name line, the null, the
// statistic, the p-value and the reference distribution.
func (w *Wald) String() string {
	var b strings.Builder
	if w.name != "" {
		b.WriteString(w.name)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "H0: %s\nStatistic: %0.4f\nP-value: %0.4f\nDistributed: %s",
		w.null, w.stat, w.pval, w.DistName())

	return b.String()
}
