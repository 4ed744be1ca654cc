package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog"

	"github.com/guttosm/rocket-sim/internal/domain/model"
	"github.com/guttosm/rocket-sim/internal/i18n"
	"github.com/guttosm/rocket-sim/internal/logger"
	"github.com/guttosm/rocket-sim/internal/metrics"
)

// Cargo budget and per-item bounds.
const (
	CargoWeightRatio = 0.04
	CargoVolumeRatio = 0.6
	MinItemWeight    = 10
	MaxItemWeight    = 512
	MinItemVolume    = 0.5
)

// ErrMalformedInput is returned by an ItemSource when an item field is not a
// number. The loader reports it and asks for the next item.
var ErrMalformedInput = errors.New("malformed numeric input")

// ItemSource produces the cargo items offered for loading.
// Next returns done=true when the caller has nothing more to load.
// Returning io.EOF is treated like done.
type ItemSource interface {
	Next(ctx context.Context) (item model.CargoItem, done bool, err error)
}

// OutputSink receives the progress lines of a loading session.
type OutputSink interface {
	Emit(line string)
}

type discardSink struct{}

func (discardSink) Emit(string) {}

// CargoLoader defines the interface for cargo loading operations.
type CargoLoader interface {
	LoadCargo(ctx context.Context, initialWeight, radius, cylinderHeight float64, src ItemSource) (model.CargoState, error)
}

// CargoOption configures a CargoLoaderService.
type CargoOption func(*CargoLoaderService)

// CargoLoaderService fills the rocket hold greedily, item by item, within the
// weight and volume budgets derived from the rocket.
type CargoLoaderService struct {
	sink       OutputSink
	translator *i18n.Translator
	locale     string
	log        zerolog.Logger
}

// NewCargoLoaderService creates a new CargoLoaderService with the given options.
func NewCargoLoaderService(opts ...CargoOption) *CargoLoaderService {
	s := &CargoLoaderService{
		sink:       discardSink{},
		translator: i18n.GetTranslator(),
		locale:     i18n.DefaultLocale,
		log:        logger.Logger(),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSink sets where progress lines are emitted.
func WithSink(sink OutputSink) CargoOption {
	return func(s *CargoLoaderService) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithTranslator sets the message catalog and locale for emitted lines.
func WithTranslator(t *i18n.Translator, locale string) CargoOption {
	return func(s *CargoLoaderService) {
		if t != nil {
			s.translator = t
		}
		if locale != "" {
			s.locale = locale
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) CargoOption {
	return func(s *CargoLoaderService) {
		s.log = l
	}
}

// ComputeStorageBox returns the square-based box inscribed in the cylinder
// and half as tall as it.
func ComputeStorageBox(radius, cylinderHeight float64) model.StorageBox {
	side := round2(math.Sqrt2 * radius)
	return model.StorageBox{
		Width:  side,
		Length: side,
		Height: round2(cylinderHeight / 2),
	}
}

// NewCargoState returns the empty loading state for a rocket.
func NewCargoState(initialWeight, radius, cylinderHeight float64) model.CargoState {
	box := ComputeStorageBox(radius, cylinderHeight)
	return model.CargoState{
		RocketWeight: initialWeight,
		MaxWeight:    CargoWeightRatio * initialWeight,
		MaxVolume:    CargoVolumeRatio * box.Volume(),
	}
}

// FitsMinimalItem reports whether the remaining budget still has room for the
// lightest, smallest item that can be accepted.
func FitsMinimalItem(state model.CargoState) bool {
	return state.RemainingWeight() >= MinItemWeight && state.RemainingVolume() >= MinItemVolume
}

// ValidateItem checks item against the per-item bounds and the remaining
// budget of state. It returns model.RejectNone when the item can be loaded.
func ValidateItem(state model.CargoState, item model.CargoItem) model.RejectReason {
	volume := item.Volume()
	switch {
	case item.Weight < MinItemWeight:
		return model.RejectTooLight
	case item.Weight > MaxItemWeight:
		return model.RejectTooHeavy
	case volume < MinItemVolume:
		return model.RejectTooSmall
	case state.AccumulatedWeight+item.Weight > state.MaxWeight:
		return model.RejectWeightBudget
	case state.AccumulatedVolume+volume > state.MaxVolume:
		return model.RejectVolumeBudget
	default:
		return model.RejectNone
	}
}

// LoadCargo asks src for items until it is done or the budget cannot take
// another item, and returns the final state. RocketWeight is rounded to
// 2 decimals and is never below initialWeight.
//
// When the budget cannot take even a minimal item the source is never
// consulted. Rejected and malformed items leave the state unchanged.
// Errors from src other than ErrMalformedInput and io.EOF end the session and
// are returned with the state reached so far.
func (s *CargoLoaderService) LoadCargo(ctx context.Context, initialWeight, radius, cylinderHeight float64, src ItemSource) (model.CargoState, error) {
	state := NewCargoState(initialWeight, radius, cylinderHeight)

	log := s.log.With().
		Float64("max_weight", state.MaxWeight).
		Float64("max_volume", state.MaxVolume).
		Logger()

	if state.MaxWeight < MinItemWeight || state.MaxVolume < MinItemVolume {
		log.Debug().Msg("Cargo budget too small for any item")
		s.emit(i18n.KeyCargoFull)
		return s.finish(log, state), nil
	}

	for {
		if !FitsMinimalItem(state) {
			s.emit(i18n.KeyCargoFull)
			return s.finish(log, state), nil
		}

		if err := ctx.Err(); err != nil {
			return s.finish(log, state), fmt.Errorf("load cargo: %w", err)
		}

		item, done, err := src.Next(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return s.finish(log, state), nil
		case errors.Is(err, ErrMalformedInput):
			metrics.RecordCargoItem(metrics.CargoMalformed)
			log.Debug().Err(err).Msg("Malformed cargo item")
			s.emit(i18n.KeyCargoMalformed)
			continue
		case err != nil:
			return s.finish(log, state), fmt.Errorf("next cargo item: %w", err)
		}
		if done {
			return s.finish(log, state), nil
		}

		if reason := ValidateItem(state, item); reason != model.RejectNone {
			state.Rejected++
			metrics.RecordCargoItem(metrics.CargoRejected)
			log.Debug().
				Str("reason", string(reason)).
				Float64("weight", item.Weight).
				Float64("volume", item.Volume()).
				Msg("Cargo item rejected")
			s.emit(i18n.KeyCargoRejected)
			continue
		}

		state.AccumulatedWeight += item.Weight
		state.AccumulatedVolume += item.Volume()
		state.RocketWeight += item.Weight
		state.Accepted++
		metrics.RecordCargoItem(metrics.CargoAccepted)
	}
}

func (s *CargoLoaderService) emit(key string) {
	s.sink.Emit(s.translator.Translate(key, s.locale))
}

func (s *CargoLoaderService) finish(log zerolog.Logger, state model.CargoState) model.CargoState {
	state.RocketWeight = round2(state.RocketWeight)
	metrics.RecordLoadedWeight(state.RocketWeight)
	log.Info().
		Int("accepted", state.Accepted).
		Int("rejected", state.Rejected).
		Float64("rocket_weight", state.RocketWeight).
		Msg("Cargo loading finished")
	return state
}
