package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siigosync/entity"
	"siigosync/impl/auth"
)

func TestUserByToken(t *testing.T) {
	a := auth.New(auth.NewUserList([]entity.User{
		{Username: "erp", Token: "t-erp"},
		{Username: "empty"},
	}))

	user, err := a.UserByToken("t-erp")
	require.NoError(t, err)
	assert.Equal(t, "erp", user.Username)

	_, err = a.UserByToken("")
	assert.Error(t, err)
	_, err = a.UserByToken("unknown")
	assert.Error(t, err)
}

func TestUserByTokenWithoutDatabase(t *testing.T) {
	_, err := auth.New(nil).UserByToken("t")
	assert.EqualError(t, err, "database not connected")
}
