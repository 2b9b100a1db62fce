package auth

import (
	"fmt"
	"siigosync/entity"
)

type Database interface {
	GetUser(token string) (*entity.User, error)
}

type Auth struct {
	db Database
}

func New(db Database) *Auth {
	return &Auth{db: db}
}

func (a *Auth) UserByToken(token string) (*entity.User, error) {
	if a.db == nil {
		return nil, fmt.Errorf("database not connected")
	}
	return a.db.GetUser(token)
}

// UserList is a Database over users declared in the config file
type UserList map[string]entity.User

func NewUserList(users []entity.User) UserList {
	list := make(UserList, len(users))
	for _, u := range users {
		if u.Token == "" {
			continue
		}
		list[u.Token] = u
	}
	return list
}

func (l UserList) GetUser(token string) (*entity.User, error) {
	u, ok := l[token]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return &u, nil
}
