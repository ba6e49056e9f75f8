package v1

import "time"

type URIID struct {
	ID uint64 `uri:"id" binding:"required" example:"42"` // The ID of the resource
}

type URIMonth struct {
	Month time.Time `uri:"month" time_format:"2006-01" time_utc:"1" binding:"required" example:"2024-05"` // Year and month
}
