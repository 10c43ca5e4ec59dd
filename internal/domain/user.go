package domain

import "time"

// User statuses. Withdrawn users keep their document but can no longer sign in.
const (
	UserStatusActive     = "ACTIVE"
	UserStatusWithdrawal = "WITHDRAWAL"
)

type User struct {
	UserID       string      `json:"id" dynamodbav:"user_id"`
	Email        string      `json:"email" dynamodbav:"email"`
	Nickname     string      `json:"nickname" dynamodbav:"nickname"`
	PasswordHash string      `json:"-" dynamodbav:"password_hash"`
	TeamIDs      []string    `json:"teamIds" dynamodbav:"team_ids"`
	AuthorityIDs []string    `json:"-" dynamodbav:"authorities"`
	Authorities  []Authority `json:"authorities,omitempty" dynamodbav:"-"`
	Status       string      `json:"status" dynamodbav:"status"`
	CreatedAt    time.Time   `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" dynamodbav:"updated_at"`
}

// IsActive reports whether the user may authenticate.
func (u *User) IsActive() bool { return u.Status == UserStatusActive }

type SignupInput struct {
	Email    string   `json:"email" validate:"required,email" message:"please enter a valid email address"`
	Password string   `json:"password" validate:"required,min=8,max=72" message:"password must be 8 to 72 characters"`
	Nickname string   `json:"nickname" validate:"required,max=20" message:"nickname must be 1 to 20 characters"`
	TeamIDs  []string `json:"teamIds"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email" message:"please enter a valid email address"`
	Password string `json:"password" validate:"required" message:"please enter a password"`
}
