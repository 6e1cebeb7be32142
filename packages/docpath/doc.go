// Package docpath resolves string path expressions against JSON-like
// document trees.
//
// Supported path syntax:
//   - Dotted property steps (user.profile.name)
//   - Bracket index notation (items[0].id, matrix[1][2])
//   - Leading index into a root array ([0].name)
//
// Resolution never fails: missing keys, out-of-range indices, and
// steps into scalar or null values all resolve as absent. A stored
// null is a present value and is never confused with an absent path.
package docpath
