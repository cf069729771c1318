package stats

type Summary struct {
	Revenue      float64 `json:"revenue"`
	SalesCount   int     `json:"salesCount"`
	StudentCount int     `json:"studentCount"`
	CourseCount  int     `json:"courseCount"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Sales   int     `json:"sales"`
}

type CourseSales struct {
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Sales    int     `json:"sales"`
	Revenue  float64 `json:"revenue"`
}

// Overview is everything the dashboard landing screen shows at once.
type Overview struct {
	Summary    *Summary        `json:"summary"`
	Revenue    []*RevenuePoint `json:"revenue"`
	TopCourses []*CourseSales  `json:"topCourses"`
}
