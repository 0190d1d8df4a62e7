package models

// User represents an account that owns contacts.
// Sensitive fields are never serialized.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login name (at most 20 characters).
	Username string `json:"username"`

	// HashPassword is the bcrypt hash of the user's password.
	HashPassword string `json:"-"`

	// RefreshToken is the hex SHA-256 digest of the refresh token issued on
	// the last login or refresh.
	// Empty when the user is logged out.
	RefreshToken string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of register and login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
