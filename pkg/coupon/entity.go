package coupon

import "time"

type Coupon struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	MaxUses   int       `json:"maxUses"`
	Used      int       `json:"used"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	TypePercent = "percent"
	TypeFixed   = "fixed"
)
