package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a stored identity, keyed by a unique id and unique email.
// PasswordHash is excluded from every JSON representation.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Age          int    `json:"age"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// TokenClaims is the identity claim set embedded in an issued token.
// Claims are trusted as-is for the lifetime of the token; they can go
// stale relative to the store until the token expires.
type TokenClaims struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
