package models

import "time"

// IdempotencyKey tracks processed requests to prevent duplicate submissions
type IdempotencyKey struct {
	CreatedAt      time.Time
	Key            string
	RequestPath    string
	ResponseBody   string
	ResponseStatus int
}
