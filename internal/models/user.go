package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID                 int64     `json:"id"`
	OpenID             string    `json:"openId"`
	Name               *string   `json:"name"`
	Email              *string   `json:"email"`
	LoginMethod        *string   `json:"loginMethod"`
	Role               string    `json:"role"`
	AvatarURL          *string   `json:"avatarUrl"`
	ChallengeStartDate *Date     `json:"challengeStartDate"`
	TargetWeight       *float64  `json:"targetWeight"`
	Height             *int      `json:"height"`
	BirthDate          *Date     `json:"birthDate"`
	Gender             *string   `json:"gender"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	LastSignedIn       time.Time `json:"lastSignedIn"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
