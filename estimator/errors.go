package estimator

import "fmt"

// Kind classifies why an estimator rejected its input, matching spec.md
// §7's closed taxonomy. Callers branch on Kind with errors.Is against the
// package-level KindXxx sentinels below, exactly as the reference test
// fixtures' expected_error.id values do.
type Kind string

// The five violation kinds spec.md §7 names. Every validation failure in
// this module and in package bounds carries exactly one of these.
const (
	// KindValidity marks a non-finite value, an empty sample, or a NaN
	// surfacing in a pairwise computation.
	KindValidity Kind = "validity"
	// KindDomain marks an out-of-range misrate, a sample size below the
	// estimator's minimum, or a rank outside its valid window.
	KindDomain Kind = "domain"
	// KindPositivity marks a non-positive value where Ratio/RatioBounds's
	// log-domain transform requires strict positivity.
	KindPositivity Kind = "positivity"
	// KindSparity marks Spread collapsing to zero (too many ties), which
	// leaves ratio-based estimators undefined.
	KindSparity Kind = "sparity"
	// KindNumerical marks a convergence failure or an overflow guard in
	// the selection engines.
	KindNumerical Kind = "numerical"
)

// Violation is the error type every exported function in estimator and
// bounds returns on validation failure. It wraps a sentinel Kind (so
// errors.Is(err, estimator.KindDomain) works directly) and tags the
// offending argument with Subject, matching spec.md §6's (id, subject)
// contract.
type Violation struct {
	Kind    Kind
	Subject string
	Err     error
}

// Error implements the error interface.
func (v *Violation) Error() string {
	if v.Err != nil {
		return fmt.Sprintf("estimator: %s violation on %q: %v", v.Kind, v.Subject, v.Err)
	}
	return fmt.Sprintf("estimator: %s violation on %q", v.Kind, v.Subject)
}

// Unwrap lets errors.Is(err, estimator.KindValidity) (and similar) match
// through the Kind sentinel, and lets callers recover any wrapped cause.
func (v *Violation) Unwrap() []error {
	if v.Err != nil {
		return []error{v.Kind, v.Err}
	}
	return []error{v.Kind}
}

// Is reports whether target is the same Kind sentinel, so
// errors.Is(err, KindDomain) works without an explicit wrapped sentinel
// error value per kind.
func (v *Violation) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && v.Kind == k
}

// Is implements errors.Is's target-side contract for the Kind type itself,
// so errors.Is(err, KindDomain) compares v.Kind == KindDomain directly.
func (k Kind) Is(target error) bool {
	other, ok := target.(Kind)
	return ok && k == other
}

func (k Kind) Error() string { return string(k) }

// violation constructs a *Violation for the given kind and subject.
func violation(kind Kind, subject string) error {
	return &Violation{Kind: kind, Subject: subject}
}
