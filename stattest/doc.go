// Package stattest provides immutable hypothesis-test result values.
//
// 🚀 What is stattest?
//
//	Three small value objects shared across estimators:
//	  • Wald         — a Wald test statistic with a chi-squared(df) or
//	    F(df, denom) reference distribution, its p-value, and its
//	    10%/5%/1% critical values published through an attrmap.Map
//	  • Invalid      — a test that could not be computed; carries the reason
//	  • Inapplicable — a test that does not apply to the model specification
//
// All three satisfy Result, so callers can hold any outcome uniformly:
// the sentinel variants report NaN statistics and p-values and nil
// critical values.
//
// ⚙️ Usage:
//
//	ts, err := stattest.NewWald(3.84, "coefficients are zero", 1,
//		stattest.WithName("joint significance"))
//	if err != nil {
//		// ErrInvalidDF on non-positive degrees of freedom
//	}
//	fmt.Println(ts.PVal(), ts.DistName())
//	cv, _ := ts.CriticalValues().Get("5%")
//
// Reference distributions come from gonum's stat/distuv.
package stattest
