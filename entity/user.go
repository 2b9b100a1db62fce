package entity

// User is an API consumer authenticated by a static bearer token.
type User struct {
	Username string `json:"username" yaml:"username" validate:"required"`
	Token    string `json:"token" yaml:"token" validate:"required,min=1"`
}
