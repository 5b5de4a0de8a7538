package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseract/formify/pkg/validator"
)

func TestIntValidator(t *testing.T) {
	t.Run("converts numeric strings to int64", func(t *testing.T) {
		value, err := validator.NewInt().Convert("age", "42")
		require.NoError(t, err)
		assert.Equal(t, int64(42), value)
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		value, err := validator.NewInt().Convert("age", " 42 ")
		require.NoError(t, err)
		assert.Equal(t, int64(42), value)
	})

	t.Run("converts negative numbers", func(t *testing.T) {
		value, err := validator.NewInt().Convert("offset", "-7")
		require.NoError(t, err)
		assert.Equal(t, int64(-7), value)
	})

	t.Run("rejects non-numeric input as conversion failure", func(t *testing.T) {
		for _, raw := range []string{"abc", "", "4.5", "42abc"} {
			_, err := validator.NewInt().Convert("age", raw)
			require.Error(t, err, "expected %q to fail", raw)
			assert.True(t, validator.IsConversionError(err))
		}
	})

	t.Run("conversion error names the raw value", func(t *testing.T) {
		_, err := validator.NewInt().Convert("age", "abc")
		require.Error(t, err)
		assert.Equal(t, `age: cannot interpret "abc" as integer`, err.Error())
	})

	t.Run("min bound is inclusive", func(t *testing.T) {
		v := validator.NewInt(validator.WithIntMin(18))
		assert.NoError(t, v.Validate("age", int64(18)))
		assert.Error(t, v.Validate("age", int64(17)))
	})

	t.Run("max violation references the bound", func(t *testing.T) {
		err := validator.NewInt(validator.WithIntMax(150)).Validate("age", int64(200))
		require.Error(t, err)

		var ve validator.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "must be at most 150", ve.Message)
		assert.Equal(t, int64(150), ve.TranslationValues["max"])
	})

	t.Run("rejects non-int64 value", func(t *testing.T) {
		err := validator.NewInt().Validate("age", "42")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a integer value")
	})
}

func TestFloatValidator(t *testing.T) {
	t.Run("converts decimal strings to float64", func(t *testing.T) {
		value, err := validator.NewFloat().Convert("price", "19.99")
		require.NoError(t, err)
		assert.Equal(t, 19.99, value)
	})

	t.Run("accepts plain integers", func(t *testing.T) {
		value, err := validator.NewFloat().Convert("price", "20")
		require.NoError(t, err)
		assert.Equal(t, 20.0, value)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := validator.NewFloat().Convert("price", "free")
		require.Error(t, err)
		assert.True(t, validator.IsConversionError(err))
	})

	t.Run("applies min and max bounds", func(t *testing.T) {
		v := validator.NewFloat(validator.WithFloatMin(0), validator.WithFloatMax(100))
		assert.NoError(t, v.Validate("percent", 55.5))
		assert.Error(t, v.Validate("percent", -0.1))
		assert.Error(t, v.Validate("percent", 100.1))
	})
}

func TestNumericChecks(t *testing.T) {
	t.Run("Between includes both bounds", func(t *testing.T) {
		between := validator.Between[int64](1, 10)
		assert.True(t, between("count", 1).Check())
		assert.True(t, between("count", 10).Check())
		assert.False(t, between("count", 0).Check())
		assert.False(t, between("count", 11).Check())
		assert.Equal(t, "must be between 1 and 10", between("count", 0).Error.Message)
	})

	t.Run("Positive excludes zero", func(t *testing.T) {
		positive := validator.Positive[float64]()
		assert.True(t, positive("amount", 0.01).Check())
		assert.False(t, positive("amount", 0).Check())
		assert.False(t, positive("amount", -1).Check())
	})

	t.Run("MinNum and MaxNum work across numeric types", func(t *testing.T) {
		assert.True(t, validator.MinNum(uint8(3))("n", uint8(5)).Check())
		assert.False(t, validator.MaxNum(2.5)("n", 2.6).Check())
	})
}
