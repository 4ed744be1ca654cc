package service

import (
	"errors"
	"math"
	"math/big"

	"github.com/guttosm/rocket-sim/internal/domain/model"
)

// Cruise burn rates by mass bracket.
const (
	MassLimitLow   = 80000
	MassLimitHigh  = 350000
	BurnRateLow    = 768
	BurnRateMedium = 1314
	BurnRateHigh   = 1542
)

var (
	// ErrZeroExhaustVelocity is returned when the exhaust velocity is zero.
	ErrZeroExhaustVelocity = errors.New("exhaust velocity must not be zero")
	// ErrNonFiniteResult is returned when a calculation overflows or is undefined.
	ErrNonFiniteResult = errors.New("calculation result is not finite")
)

// BurnRate returns the constant cruise burn rate for a rocket of the given mass.
func BurnRate(mass float64) float64 {
	switch {
	case mass < MassLimitLow:
		return BurnRateLow
	case mass < MassLimitHigh:
		return BurnRateMedium
	default:
		return BurnRateHigh
	}
}

// Fuel returns the fuel needed to leave the atmosphere at initialVelocity
// plus the fuel burnt cruising for tripTime.
func Fuel(g model.RocketGeometry, exhaustVelocity, initialVelocity, tripTime float64) (float64, error) {
	if exhaustVelocity == 0 {
		return 0, ErrZeroExhaustVelocity
	}

	mass := Mass(g)
	exitFuel := mass * (powE(initialVelocity/exhaustVelocity) - 1)
	restFuel := tripTime * BurnRate(mass)

	fuel := round2(exitFuel + restFuel)
	if math.IsInf(fuel, 0) || math.IsNaN(fuel) {
		return 0, ErrNonFiniteResult
	}
	return fuel, nil
}

const (
	// powPrec is the working precision of powE in bits.
	powPrec = 256
	// maxExactExponent bounds the whole exponents powE raises exactly.
	maxExactExponent = 1 << 20
)

// powE returns math.E raised to y. The whole part of y is raised exactly in
// extended precision, so whole exponents are rounded once; the fractional
// part comes from math.Pow.
func powE(y float64) float64 {
	whole, frac := math.Modf(y)
	if math.IsNaN(y) || math.Abs(whole) > maxExactExponent {
		return math.Pow(math.E, y)
	}

	base := new(big.Float).SetPrec(powPrec).SetFloat64(math.E)
	acc := new(big.Float).SetPrec(powPrec).SetInt64(1)
	for n := int64(math.Abs(whole)); n > 0; n >>= 1 {
		if n&1 == 1 {
			acc.Mul(acc, base)
		}
		base.Mul(base, base)
	}
	if whole < 0 {
		acc.Quo(new(big.Float).SetPrec(powPrec).SetInt64(1), acc)
	}
	if frac != 0 {
		acc.Mul(acc, new(big.Float).SetPrec(powPrec).SetFloat64(math.Pow(math.E, frac)))
	}

	f, _ := acc.Float64()
	return f
}
