package domain

type UserRole string

const (
	RoleIndividual UserRole = "individual"
	RoleDepartment UserRole = "dept"
)

func (r UserRole) Valid() bool {
	return r == RoleIndividual || r == RoleDepartment
}

type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Role       UserRole `json:"role"`
	Email      string   `json:"email"`
}

type CreateUserInput struct {
	ID         string
	Name       string
	Department string
	Role       string
	Email      string
}

// UpdateUserInput carries the fields to merge over an existing user.
// Nil fields are left as they are.
type UpdateUserInput struct {
	Name       *string
	Department *string
	Role       *string
	Email      *string
}
