package models

// Roles known to the backend. Role comparison is exact and case-sensitive.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User mirrors the backend's read-only user representation.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	UserRole  string `json:"userRole"`
}

// Credentials is the login form payload.
type Credentials struct {
	Username     string `json:"username" form:"username" binding:"required,min=2,max=50"`
	Password     string `json:"password" form:"password" binding:"required"`
	KeepLoggedIn bool   `json:"keepLoggedIn" form:"keepLoggedIn"`
}

// UserRegister is the self-registration payload. The confirmation field is
// checked locally; the backend assigns the role.
type UserRegister struct {
	Username        string `json:"username" form:"username" binding:"required,min=2,max=50"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Firstname       string `json:"firstname" form:"firstname" binding:"required,min=2,max=50"`
	Lastname        string `json:"lastname" form:"lastname" binding:"required,min=2,max=50"`
	Password        string `json:"password" form:"password" binding:"required,min=8,password_complexity"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" binding:"required,eqfield=Password"`
}

// UserInsert is the admin create payload. Password and role exist only at
// creation time, so insert and update are distinct types.
type UserInsert struct {
	Username  string `json:"username" form:"username" binding:"required,min=2,max=50"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Firstname string `json:"firstname" form:"firstname" binding:"required,min=2,max=50"`
	Lastname  string `json:"lastname" form:"lastname" binding:"required,min=2,max=50"`
	Password  string `json:"password" form:"password" binding:"required,min=8,password_complexity"`
	UserRole  string `json:"userRole" form:"userRole" binding:"required,user_role"`
}

// UserUpdate is the admin edit payload. It deliberately carries no
// password or role fields.
type UserUpdate struct {
	Username  string `json:"username" form:"username" binding:"required,min=2,max=50"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Firstname string `json:"firstname" form:"firstname" binding:"required,min=2,max=50"`
	Lastname  string `json:"lastname" form:"lastname" binding:"required,min=2,max=50"`
}
