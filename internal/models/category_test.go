package models_test

import (
	"testing"

	"github.com/amonetti/nocwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		input       string
		expected    models.Category
		expectError bool
	}{
		{input: "camera", expected: models.CategoryCamera},
		{input: "LENS", expected: models.CategoryLens},
		{input: " lens ", expected: models.CategoryLens},
		{input: "tripod", expectError: true},
		{input: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			category, err := models.ParseCategory(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, models.ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, category)
		})
	}
}

func TestCategory_Codes(t *testing.T) {
	assert.Equal(t, "CO", models.CategoryCamera.APICode())
	assert.Equal(t, "OB", models.CategoryLens.APICode())
	assert.Equal(t, "cameras", models.CategoryCamera.Plural())
	assert.Equal(t, "lenses", models.CategoryLens.Plural())
	assert.Equal(t, "camera", models.CategoryCamera.String())
	assert.Equal(t, "lens", models.CategoryLens.String())
}
