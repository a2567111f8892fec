package model

// UserEntity represents the users table entity. The username is the natural
// primary key. Token and TokenExpiredAt are both set on login and both
// cleared on logout; TokenExpiredAt is epoch milliseconds.
type UserEntity struct {
	Username       string  `db:"username" json:"username"`
	Name           string  `db:"name" json:"name"`
	PasswordHash   string  `db:"password" json:"-"`
	Token          *string `db:"token" json:"-"`
	TokenExpiredAt *int64  `db:"token_expired_at" json:"-"`
}

// UserFilter for querying users
type UserFilter struct {
	Username string
	Token    string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginRequest for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest carries a partial profile update; nil fields are left
// untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,max=100"`
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse is returned by login. ExpiredAt is epoch milliseconds.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"`
}
