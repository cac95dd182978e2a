package account

import (
	"time"

	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

// MinPasswordLength is the shortest password signup accepts.
const MinPasswordLength = 6

// Profile is the public view of a user. The password hash never leaves the
// account module.
type Profile struct {
	ID                string    `json:"id"`
	DisplayName       string    `json:"display_name"`
	Email             string    `json:"email"`
	Designation       string    `json:"designation"`
	YearsOfExperience int       `json:"years_of_experience"`
	Avatar            string    `json:"avatar,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ProfileOf(u repository.User) Profile {
	return Profile{
		ID:                u.ID,
		DisplayName:       u.DisplayName,
		Email:             u.Email,
		Designation:       u.Designation,
		YearsOfExperience: u.YearsOfExperience,
		Avatar:            u.Avatar,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
