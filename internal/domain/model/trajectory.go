package model

// TrajectorySample is the height of the projectile at a time offset.
type TrajectorySample struct {
	// Time is the offset from launch
	Time int `json:"time"`
	// Height in meters, rounded to 2 decimals
	Height float64 `json:"height"`
}
