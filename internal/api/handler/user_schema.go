package handler

// upsertUserRequest is shared by POST /users and PUT /users/:id; updates
// require every field, including the password.
type upsertUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Age       *int   `json:"age"        validate:"required,gte=0"`
	Password  string `json:"password"   validate:"required,min=5"`
}
