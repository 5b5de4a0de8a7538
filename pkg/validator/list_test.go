package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseract/formify/pkg/validator"
)

func TestListValidator(t *testing.T) {
	t.Run("converts every raw value with the element validator", func(t *testing.T) {
		v := validator.NewList(validator.NewInt())

		value, err := v.ConvertAll("scores", []string{"1", "2", "3"})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), int64(2), int64(3)}, value)
	})

	t.Run("single raw value becomes a one-element list", func(t *testing.T) {
		v := validator.NewList(validator.NewString())

		value, err := v.Convert("tags", "go")
		require.NoError(t, err)
		assert.Equal(t, []any{"go"}, value)
	})

	t.Run("conversion error names the failing element", func(t *testing.T) {
		v := validator.NewList(validator.NewInt())

		_, err := v.ConvertAll("scores", []string{"1", "oops", "3"})
		require.Error(t, err)
		assert.True(t, validator.IsConversionError(err))
		assert.Contains(t, err.Error(), "value 2:")

		var ve validator.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, 1, ve.TranslationValues["index"])
	})

	t.Run("element checks run during validation", func(t *testing.T) {
		v := validator.NewList(validator.NewInt(validator.WithIntMax(10)))

		value, err := v.ConvertAll("scores", []string{"5", "15"})
		require.NoError(t, err)

		err = v.Validate("scores", value)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value 2: must be at most 10")
	})

	t.Run("enforces item count bounds", func(t *testing.T) {
		v := validator.NewList(validator.NewString(), validator.WithMinItems(2), validator.WithMaxItems(3))

		value, _ := v.ConvertAll("tags", []string{"a"})
		err := v.Validate("tags", value)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must contain at least 2 values")

		value, _ = v.ConvertAll("tags", []string{"a", "b", "c", "d"})
		err = v.Validate("tags", value)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must contain at most 3 values")

		value, _ = v.ConvertAll("tags", []string{"a", "b"})
		assert.NoError(t, v.Validate("tags", value))
	})

	t.Run("rejects non-list values", func(t *testing.T) {
		v := validator.NewList(validator.NewString())
		assert.Error(t, v.Validate("tags", "not-a-list"))
	})
}
