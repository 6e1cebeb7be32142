package expect

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/docspec/packages/docpath"
)

// matchConfig collects per-call comparison options.
type matchConfig struct {
	caseInsensitive bool
}

// MatchOption adjusts a single MatchesValue comparison.
type MatchOption func(*matchConfig)

// CaseInsensitive makes MatchesValue fold case when both the resolved
// and expected values are strings. Strings nested inside containers
// still compare exactly.
func CaseInsensitive() MatchOption {
	return func(c *matchConfig) {
		c.caseInsensitive = true
	}
}

// KeyExists checks that path resolves to a stored value. A stored null
// exists; a missing key, out-of-range index, or step into a scalar
// does not.
func (e *Expectation) KeyExists(path string) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	return e.verify(path, "keyExists", "to exist", describe(v, ok), ok, nil, v)
}

// IsDefined checks that path resolves to a stored value, like
// KeyExists but phrased for value-oriented chains.
func (e *Expectation) IsDefined(path string) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	return e.verify(path, "isDefined", "to be defined", describe(v, ok), ok, nil, v)
}

// IsType checks that the value at path classifies as kind. Absent
// paths classify as KindUndefined.
func (e *Expectation) IsType(path string, kind Kind) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	actual := classify(v, ok)
	phrase := fmt.Sprintf("to be type %s", kind)
	return e.verify(path, "isType", phrase, string(actual), actual == kind, kind, v)
}

// IsNull checks that path holds a stored null. An absent path is not
// null.
func (e *Expectation) IsNull(path string) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	return e.verify(path, "isNull", "to be null", describe(v, ok), ok && v == nil, nil, v)
}

// IsTruthy checks the value at path against the falsy set: false,
// numeric zero, the empty string, null, and absent. Everything else is
// truthy, including empty arrays and objects.
func (e *Expectation) IsTruthy(path string) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	return e.verify(path, "isTruthy", "to be truthy", describe(v, ok), truthy(v, ok), nil, v)
}

// IsFalsy checks that the value at path is in the falsy set.
func (e *Expectation) IsFalsy(path string) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	return e.verify(path, "isFalsy", "to be falsy", describe(v, ok), !truthy(v, ok), nil, v)
}

// MatchesValue checks deep structural equality between the value at
// path and expected: sequences are order-sensitive, objects must agree
// on every key, and numbers compare by value across int and float
// forms. An absent path never matches, not even against nil.
func (e *Expectation) MatchesValue(path string, expected any, opts ...MatchOption) *Expectation {
	var cfg matchConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	v, ok := docpath.Resolve(e.s.doc, path)
	passed := ok && matchValues(v, expected, cfg)
	phrase := fmt.Sprintf("to equal %v", expected)
	return e.verify(path, "matchesValue", phrase, describe(v, ok), passed, expected, v)
}

// ContainsValue checks membership: a sequence at path must hold an
// element deep-equal to expected, a string at path must contain the
// string form of expected. Other kinds never contain anything.
func (e *Expectation) ContainsValue(path string, expected any) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	passed := ok && containsValue(v, expected)
	phrase := fmt.Sprintf("to contain %v", expected)
	return e.verify(path, "containsValue", phrase, describe(v, ok), passed, expected, v)
}

// GreaterThan checks that path holds a number strictly greater than
// bound. Non-numeric and absent values fail the check.
func (e *Expectation) GreaterThan(path string, bound float64) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	n, isNum := numeric(v)
	passed := ok && isNum && n > bound
	phrase := fmt.Sprintf("to be greater than %v", bound)
	return e.verify(path, "greaterThan", phrase, describe(v, ok), passed, bound, v)
}

// LessThan checks that path holds a number strictly less than bound.
func (e *Expectation) LessThan(path string, bound float64) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	n, isNum := numeric(v)
	passed := ok && isNum && n < bound
	phrase := fmt.Sprintf("to be less than %v", bound)
	return e.verify(path, "lessThan", phrase, describe(v, ok), passed, bound, v)
}

// OneOf checks that the value at path deep-equals one of candidates.
// With no candidates the check always fails.
func (e *Expectation) OneOf(path string, candidates ...any) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	passed := false
	if ok {
		for _, candidate := range candidates {
			if deepEqual(v, candidate) {
				passed = true
				break
			}
		}
	}
	phrase := fmt.Sprintf("to be one of %v", candidates)
	return e.verify(path, "oneOf", phrase, describe(v, ok), passed, candidates, v)
}

// Satisfies checks the value at path with a caller-supplied predicate.
// The predicate receives nil for both stored nulls and absent paths;
// pair with IsDefined when the distinction matters. A panic inside the
// predicate is not recovered and aborts the session in either mode.
func (e *Expectation) Satisfies(path string, predicate func(any) bool) *Expectation {
	v, ok := docpath.Resolve(e.s.doc, path)
	return e.verify(path, "satisfies", "to satisfy predicate", describe(v, ok), predicate(v), nil, v)
}

func matchValues(actual, expected any, cfg matchConfig) bool {
	if cfg.caseInsensitive {
		as, aOK := actual.(string)
		es, eOK := expected.(string)
		if aOK && eOK {
			return strings.EqualFold(as, es)
		}
	}
	return deepEqual(actual, expected)
}
