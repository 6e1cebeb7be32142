package expect

import "fmt"

// Failure records a single failed check.
type Failure struct {
	Path     string
	Check    string
	Expected any
	Actual   any
	Negated  bool
	Message  string
}

// session is the state shared by every view derived from one document:
// the document, the failure mode, and the soft-mode failure log.
type session struct {
	doc       any
	soft      bool
	maxErrors int
	failures  []Failure
	root      *Expectation
}

// Expectation is a chainable view over an assertion session. Views are
// cheap: Not returns a fresh one, and every check hands back the
// unnegated root so negation applies to exactly one following check.
type Expectation struct {
	s       *session
	negated bool
}

// Option is a functional option for configuring a session.
type Option func(*session)

// WithSoft toggles soft mode, where failing checks are recorded
// instead of raised.
func WithSoft(soft bool) Option {
	return func(s *session) {
		s.soft = soft
	}
}

// WithMaxErrors caps how many failures a soft session records before a
// further failing check panics with *CapacityError. Zero or negative
// means unlimited.
func WithMaxErrors(n int) Option {
	return func(s *session) {
		s.maxErrors = n
	}
}

// New creates a strict expectation over doc: the first failing check
// panics with *AssertionError. The document is never mutated.
func New(doc any, opts ...Option) *Expectation {
	s := &session{doc: doc}
	for _, opt := range opts {
		opt(s)
	}
	s.root = &Expectation{s: s}
	return s.root
}

// Soft creates a soft expectation over doc: failing checks accumulate
// and are read back with Errors. Soft overrides any WithSoft option.
func Soft(doc any, opts ...Option) *Expectation {
	e := New(doc, opts...)
	e.s.soft = true
	return e
}

// Not returns a view whose next check is inverted. Check methods
// return the unnegated root, so the modifier never carries past a
// single check; Not().Not() cancels out.
func (e *Expectation) Not() *Expectation {
	return &Expectation{s: e.s, negated: !e.negated}
}

// Errors returns a snapshot of the failures recorded so far, in the
// order they occurred. Strict sessions always return an empty slice.
func (e *Expectation) Errors() []Failure {
	return append([]Failure(nil), e.s.failures...)
}

// verify applies the view's negation and the session's failure policy
// to one evaluated check, then hands back the root view for chaining.
func (e *Expectation) verify(path, check, phrase, got string, passed bool, expected, actual any) *Expectation {
	if passed != e.negated {
		return e.s.root
	}

	if e.negated {
		phrase = "not " + phrase
	}
	failure := Failure{
		Path:     path,
		Check:    check,
		Expected: expected,
		Actual:   actual,
		Negated:  e.negated,
		Message:  fmt.Sprintf("expected %q %s, got %s", path, phrase, got),
	}

	if !e.s.soft {
		panic(&AssertionError{Failure: failure})
	}
	if e.s.maxErrors > 0 && len(e.s.failures) >= e.s.maxErrors {
		panic(&CapacityError{Max: e.s.maxErrors})
	}
	e.s.failures = append(e.s.failures, failure)
	return e.s.root
}
