// Package expect implements chainable assertions over JSON-like
// document trees addressed by string paths.
//
// Supported checks:
//   - Presence (KeyExists, IsDefined) and null checks (IsNull)
//   - Kind checks (IsType against string, number, boolean, object, array, null)
//   - Truthiness (IsTruthy, IsFalsy)
//   - Deep equality and membership (MatchesValue, ContainsValue, OneOf)
//   - Numeric comparison (GreaterThan, LessThan)
//   - Caller-supplied predicates (Satisfies)
//
// Any check can be inverted for a single call with Not. Strict
// sessions panic with *AssertionError on the first failing check; soft
// sessions record failures for later inspection with Errors, up to an
// optional WithMaxErrors capacity.
package expect
