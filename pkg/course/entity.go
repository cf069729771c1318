package course

import "time"

type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Status       string    `json:"status"`
	TeacherID    string    `json:"teacherId"`
	TeacherName  string    `json:"teacherName"`
	LessonCount  int       `json:"lessonCount"`
	StudentCount int       `json:"studentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Section struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type Lesson struct {
	ID        string `json:"id"`
	SectionID string `json:"sectionId"`
	Title     string `json:"title"`
	VideoURL  string `json:"videoUrl"`
	Duration  int    `json:"duration"`
	Position  int    `json:"position"`
	Preview   bool   `json:"preview"`
}

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)
