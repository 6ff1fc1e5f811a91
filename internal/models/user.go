// ABOUTME: User model for account identities and their roles.
// ABOUTME: Defines the two built-in demo identities.

package models

type Role string

const (
	RoleStudent Role = "student"
	RoleAuthor  Role = "author"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DemoUser is the ordinary member used for the demo sign-in.
func DemoUser() User {
	return User{
		ID:     "u1",
		Name:   "Alex Student",
		Email:  "alex@example.com",
		Role:   RoleStudent,
		Avatar: "https://picsum.photos/id/64/100/100",
	}
}

// AdminUser is the administrator identity.
func AdminUser() User {
	return User{
		ID:     "admin1",
		Name:   "System Admin",
		Email:  "admin@neonotes.com",
		Role:   RoleAdmin,
		Avatar: "https://ui-avatars.com/api/?name=Admin&background=4F46E5&color=fff",
	}
}
