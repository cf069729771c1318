package user

import "time"

// Student is a platform end user as the admin dashboard sees it.
type Student struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Status          string    `json:"status"`
	EnrolledCourses int       `json:"enrolledCourses"`
	CreatedAt       time.Time `json:"createdAt"`
}

const (
	StatusActive = "active"
	StatusBanned = "banned"
)
