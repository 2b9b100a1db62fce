package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siigosync/lib/validate"
)

type line struct {
	Code string `json:"code" validate:"required"`
}

type doc struct {
	Name  string  `json:"name" validate:"required"`
	Lines []*line `json:"lines" validate:"dive,required"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, validate.Struct(&doc{Name: "a", Lines: []*line{{Code: "x"}}}))

	err := validate.Struct(&doc{Lines: []*line{{Code: "x"}, nil}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name required")
	assert.Contains(t, err.Error(), "lines[1] required")
}

func TestStructRejectsNonStruct(t *testing.T) {
	assert.EqualError(t, validate.Struct(nil), "is nil")
	assert.EqualError(t, validate.Struct("text"), "not a struct")
}
