package cont

import (
	"context"
	"siigosync/entity"
)

type ctxKey string

const userKey ctxKey = "user"

func PutUser(c context.Context, user *entity.User) context.Context {
	if user == nil {
		return c
	}
	return context.WithValue(c, userKey, *user)
}

// Username is the authenticated caller, empty outside the authenticate middleware
func Username(c context.Context) string {
	user, ok := c.Value(userKey).(entity.User)
	if !ok {
		return ""
	}
	return user.Username
}
