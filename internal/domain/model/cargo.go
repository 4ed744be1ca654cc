package model

// StorageBox is the rectangular hold inscribed in the rocket cylinder.
type StorageBox struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// Volume returns width * length * height.
func (b StorageBox) Volume() float64 {
	return b.Width * b.Length * b.Height
}

// CargoItem is a single box offered for loading.
type CargoItem struct {
	// Weight in kilograms
	Weight float64 `json:"weight"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// Volume returns width * length * height.
func (i CargoItem) Volume() float64 {
	return i.Width * i.Length * i.Height
}

// RejectReason explains why a CargoItem was refused.
type RejectReason string

const (
	// RejectNone means the item was accepted.
	RejectNone RejectReason = ""
	// RejectTooLight means the item weighs less than the minimum.
	RejectTooLight RejectReason = "too_light"
	// RejectTooHeavy means the item weighs more than the per-item maximum.
	RejectTooHeavy RejectReason = "too_heavy"
	// RejectTooSmall means the item volume is below the minimum.
	RejectTooSmall RejectReason = "too_small"
	// RejectWeightBudget means the item would exceed the weight budget.
	RejectWeightBudget RejectReason = "weight_budget"
	// RejectVolumeBudget means the item would exceed the volume budget.
	RejectVolumeBudget RejectReason = "volume_budget"
)

// CargoState tracks a single loading session.
type CargoState struct {
	// AccumulatedWeight is the total weight of accepted items
	AccumulatedWeight float64 `json:"accumulated_weight"`
	// AccumulatedVolume is the total volume of accepted items
	AccumulatedVolume float64 `json:"accumulated_volume"`
	// RocketWeight is the initial weight plus AccumulatedWeight
	RocketWeight float64 `json:"rocket_weight"`
	// MaxWeight is the weight budget for the session
	MaxWeight float64 `json:"max_weight"`
	// MaxVolume is the volume budget for the session
	MaxVolume float64 `json:"max_volume"`
	Accepted  int     `json:"accepted"`
	Rejected  int     `json:"rejected"`
}

// RemainingWeight returns the unused part of the weight budget.
func (s CargoState) RemainingWeight() float64 {
	return s.MaxWeight - s.AccumulatedWeight
}

// RemainingVolume returns the unused part of the volume budget.
func (s CargoState) RemainingVolume() float64 {
	return s.MaxVolume - s.AccumulatedVolume
}
