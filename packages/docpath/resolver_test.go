package docpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleDocument() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "John",
			"age":  float64(30),
			"tags": []any{"admin", "staff"},
		},
		"items": []any{
			map[string]any{"id": float64(1)},
			map[string]any{"id": float64(2)},
		},
		"deleted": nil,
		"0":       "zero-key",
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain dotted path", "user.name", "user.name"},
		{"single index", "items[0]", "items.0"},
		{"index then key", "items[0].id", "items.0.id"},
		{"multiple indices", "matrix[1][2]", "matrix.1.2"},
		{"leading index", "[0].name", "0.name"},
		{"empty path", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.path))
		})
	}
}

func TestResolve_Objects(t *testing.T) {
	doc := sampleDocument()

	t.Run("top-level key", func(t *testing.T) {
		v, ok := Resolve(doc, "user")
		assert.True(t, ok)
		assert.IsType(t, map[string]any{}, v)
	})

	t.Run("nested key", func(t *testing.T) {
		v, ok := Resolve(doc, "user.name")
		assert.True(t, ok)
		assert.Equal(t, "John", v)
	})

	t.Run("missing key", func(t *testing.T) {
		v, ok := Resolve(doc, "user.email")
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("missing intermediate key", func(t *testing.T) {
		_, ok := Resolve(doc, "account.plan.name")
		assert.False(t, ok)
	})

	t.Run("numeric-looking object key", func(t *testing.T) {
		v, ok := Resolve(doc, "0")
		assert.True(t, ok)
		assert.Equal(t, "zero-key", v)
	})
}

func TestResolve_Arrays(t *testing.T) {
	doc := sampleDocument()

	t.Run("bracket index", func(t *testing.T) {
		v, ok := Resolve(doc, "user.tags[1]")
		assert.True(t, ok)
		assert.Equal(t, "staff", v)
	})

	t.Run("index then key", func(t *testing.T) {
		v, ok := Resolve(doc, "items[0].id")
		assert.True(t, ok)
		assert.Equal(t, float64(1), v)
	})

	t.Run("dotted index", func(t *testing.T) {
		v, ok := Resolve(doc, "user.tags.0")
		assert.True(t, ok)
		assert.Equal(t, "admin", v)
	})

	t.Run("root array", func(t *testing.T) {
		arr := []any{map[string]any{"id": float64(7)}}
		v, ok := Resolve(arr, "[0].id")
		assert.True(t, ok)
		assert.Equal(t, float64(7), v)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, ok := Resolve(doc, "user.tags[5]")
		assert.False(t, ok)
	})

	t.Run("negative index", func(t *testing.T) {
		_, ok := Resolve(doc, "user.tags[-1]")
		assert.False(t, ok)
	})

	t.Run("non-numeric step into array", func(t *testing.T) {
		_, ok := Resolve(doc, "user.tags.first")
		assert.False(t, ok)
	})
}

func TestResolve_NullVersusAbsent(t *testing.T) {
	doc := sampleDocument()

	t.Run("stored null is present", func(t *testing.T) {
		v, ok := Resolve(doc, "deleted")
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("missing key is absent", func(t *testing.T) {
		v, ok := Resolve(doc, "missing")
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("step through null is absent", func(t *testing.T) {
		_, ok := Resolve(doc, "deleted.inner")
		assert.False(t, ok)
	})
}

func TestResolve_NonTraversable(t *testing.T) {
	doc := sampleDocument()

	t.Run("step into string", func(t *testing.T) {
		_, ok := Resolve(doc, "user.name.first")
		assert.False(t, ok)
	})

	t.Run("step into number", func(t *testing.T) {
		_, ok := Resolve(doc, "user.age.value")
		assert.False(t, ok)
	})

	t.Run("scalar root", func(t *testing.T) {
		_, ok := Resolve("hello", "anything")
		assert.False(t, ok)
	})
}

func TestResolve_MalformedPaths(t *testing.T) {
	doc := sampleDocument()

	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"lone dot", "."},
		{"empty step", "user..name"},
		{"trailing dot", "user."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Resolve(doc, tt.path)
			assert.False(t, ok)
			assert.Nil(t, v)
		})
	}
}

func TestResolve_IsReadOnly(t *testing.T) {
	doc := sampleDocument()
	Resolve(doc, "user.tags[0]")
	Resolve(doc, "items[1].id")

	assert.Equal(t, sampleDocument(), doc)
}
