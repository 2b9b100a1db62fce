package sl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"siigosync/lib/sl"
)

func TestSecret(t *testing.T) {
	assert.Equal(t, "?", sl.Secret("token", "").Value.String())
	assert.Equal(t, "***", sl.Secret("token", "abc").Value.String())
	assert.Equal(t, "abcde***", sl.Secret("token", "abcdefgh").Value.String())
}

func TestErr(t *testing.T) {
	assert.Equal(t, "boom", sl.Err(errors.New("boom")).Value.String())
	assert.Equal(t, "<nil>", sl.Err(nil).Value.String())
}
