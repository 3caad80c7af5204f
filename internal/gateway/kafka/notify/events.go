package notify

import "time"

const (
	eventMatchCreated        = "match.created"
	eventMatchAccepted       = "match.accepted"
	eventMatchRejected       = "match.rejected"
	eventParcelStatusChanged = "parcel.status.changed"
)

type matchEvent struct {
	Event       string    `json:"event"`
	MatchID     int64     `json:"match_id"`
	ParcelID    int64     `json:"parcel_id"`
	TripID      int64     `json:"trip_id"`
	Score       float64   `json:"score"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"total_amount"`
	Currency    string    `json:"currency"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type parcelEvent struct {
	Event      string    `json:"event"`
	ParcelID   int64     `json:"parcel_id"`
	SenderID   int64     `json:"sender_id"`
	Status     string    `json:"status"`
	TripID     *int64    `json:"trip_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
