package bounds

import "github.com/pragmastat-go/pragmastat/estimator"

// Reuse estimator's (Kind, Subject) violation taxonomy: a misrate out of
// range or a sample too small to bound is the same class of failure here
// as it is one layer down, and errors.Is(err, estimator.KindDomain) should
// work identically regardless of which package raised it.

// Kind re-exports estimator.Kind so callers needn't import both packages
// to branch on a violation's kind.
type Kind = estimator.Kind

// Violation re-exports estimator.Violation.
type Violation = estimator.Violation

const (
	KindValidity   = estimator.KindValidity
	KindDomain     = estimator.KindDomain
	KindPositivity = estimator.KindPositivity
	KindSparity    = estimator.KindSparity
	KindNumerical  = estimator.KindNumerical
)

func violation(kind Kind, subject string) error {
	return &Violation{Kind: kind, Subject: subject}
}

func wrap(kind Kind, subject string, err error) error {
	return &Violation{Kind: kind, Subject: subject, Err: err}
}
