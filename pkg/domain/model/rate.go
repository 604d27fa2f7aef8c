package model

import "time"

// RateBucket names a rate limit window. GitHub meters search separately from the other
// REST endpoints.
type RateBucket int

const (
	// RateBucketCore covers account and repository endpoints
	RateBucketCore RateBucket = iota
	// RateBucketSearch covers the search endpoints
	RateBucketSearch
)

func (x RateBucket) String() string {
	switch x {
	case RateBucketCore:
		return "core"
	case RateBucketSearch:
		return "search"
	default:
		return "unknown"
	}
}

// RateStatus is the remaining request budget of the current rate limit window.
type RateStatus struct {
	Limit     int
	Remaining int
	Reset     time.Time
}
