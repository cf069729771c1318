package teacher

import "time"

type Teacher struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatarUrl"`
	Status      string    `json:"status"`
	CourseCount int       `json:"courseCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
