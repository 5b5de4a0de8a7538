package formify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseract/formify"
	"github.com/tesseract/formify/pkg/validator"
)

func TestSchemaDecode(t *testing.T) {
	type signup struct {
		Age      int64  `formify:"age"`
		Name     string `formify:"name"`
		Untagged string
	}

	t.Run("maps the validated snapshot by tag", func(t *testing.T) {
		s := signupDef(t).NewSchema()
		require.NoError(t, s.Set("age", "30"))
		require.NoError(t, s.Set("name", "Alice"))
		require.NoError(t, s.Validate())

		var out signup
		require.NoError(t, s.Decode(&out))
		assert.Equal(t, int64(30), out.Age)
		assert.Equal(t, "Alice", out.Name)
		assert.Empty(t, out.Untagged)
	})

	t.Run("skips fields that failed validation", func(t *testing.T) {
		s := signupDef(t).NewSchema()
		require.NoError(t, s.Set("age", "abc"))
		require.NoError(t, s.Set("name", "Alice"))
		require.Error(t, s.Validate())

		var out signup
		require.NoError(t, s.Decode(&out))
		assert.Zero(t, out.Age)
		assert.Equal(t, "Alice", out.Name)
	})

	t.Run("rejects non-pointer targets", func(t *testing.T) {
		s := signupDef(t).NewSchema()
		require.NoError(t, s.Set("age", "30"))
		require.NoError(t, s.Set("name", "Alice"))
		require.NoError(t, s.Validate())

		var out signup
		assert.Error(t, s.Decode(out))
	})

	t.Run("decodes list values into slices", func(t *testing.T) {
		def := formify.MustNew("tags",
			formify.NewField("tags", validator.NewList(validator.NewString())),
		)
		s := def.NewSchema()
		require.NoError(t, s.SetMulti("tags", []string{"go", "web"}))
		require.NoError(t, s.Validate())

		var out struct {
			Tags []string `formify:"tags"`
		}
		require.NoError(t, s.Decode(&out))
		assert.Equal(t, []string{"go", "web"}, out.Tags)
	})
}
