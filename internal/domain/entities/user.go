package entities

// User represents the authenticated operator of the application
type User struct {
	ID     string `json:"id" db:"id"`
	Email  string `json:"email" db:"email"`
	Name   string `json:"name" db:"full_name"`
	Role   string `json:"role" db:"role"`
	Avatar string `json:"avatar" db:"avatar_url"`
}
