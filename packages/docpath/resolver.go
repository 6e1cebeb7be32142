package docpath

import (
	"regexp"
	"strconv"
	"strings"
)

var bracketPattern = regexp.MustCompile(`\[(\d+)\]`)

// Normalize converts bracket index notation to dotted steps,
// e.g. "items[0].tags[1]" -> "items.0.tags.1", "[2].id" -> "2.id".
func Normalize(path string) string {
	result := bracketPattern.ReplaceAllString(path, ".$1")
	// Remove leading dot left over from an index at the start
	return strings.TrimPrefix(result, ".")
}

// Resolve walks path through doc and returns the value it addresses.
// The boolean reports whether the path landed on a stored value; false
// means the path is absent: a missing key, an index outside the
// sequence, or a step into a value that has no children. A stored null
// resolves to (nil, true).
//
// Resolve never returns an error and never panics. Malformed paths,
// including the empty path and empty steps, resolve as absent.
func Resolve(doc any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	current := doc
	for _, step := range strings.Split(Normalize(path), ".") {
		if step == "" {
			return nil, false
		}
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[step]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			index, err := strconv.Atoi(step)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			// Scalars and nulls have no children
			return nil, false
		}
	}
	return current, true
}
