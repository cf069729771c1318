package order

import "time"

// Order is a completed or pending course purchase.
type Order struct {
	ID          string    `json:"id"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	CourseTitle string    `json:"courseTitle"`
	Amount      float64   `json:"amount"`
	CouponCode  string    `json:"couponCode"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	StatusPaid     = "paid"
	StatusPending  = "pending"
	StatusRefunded = "refunded"
)
