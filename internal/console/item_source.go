package console

import (
	"context"
	"fmt"

	"github.com/guttosm/rocket-sim/internal/domain/model"
	"github.com/guttosm/rocket-sim/internal/i18n"
)

// DoneToken ends cargo loading when typed instead of a weight.
const DoneToken = "Done"

// ItemSource asks for cargo items one field at a time.
// It implements service.ItemSource.
type ItemSource struct {
	prompter *Prompter
}

// NewItemSource creates an ItemSource reading through p.
func NewItemSource(p *Prompter) *ItemSource {
	return &ItemSource{prompter: p}
}

// Next asks for the weight, then width, length and height of the next item.
func (s *ItemSource) Next(ctx context.Context) (model.CargoItem, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.CargoItem{}, false, err
	}

	answer, err := s.prompter.AskString(i18n.KeyPromptItemWeight)
	if err != nil {
		return model.CargoItem{}, false, err
	}
	if answer == DoneToken {
		return model.CargoItem{}, true, nil
	}

	var item model.CargoItem
	if item.Weight, err = ParseFloat(answer); err != nil {
		return model.CargoItem{}, false, fmt.Errorf("item weight: %w", err)
	}
	if item.Width, err = s.prompter.AskFloat(i18n.KeyPromptItemWidth); err != nil {
		return model.CargoItem{}, false, fmt.Errorf("item width: %w", err)
	}
	if item.Length, err = s.prompter.AskFloat(i18n.KeyPromptItemLength); err != nil {
		return model.CargoItem{}, false, fmt.Errorf("item length: %w", err)
	}
	if item.Height, err = s.prompter.AskFloat(i18n.KeyPromptItemHeight); err != nil {
		return model.CargoItem{}, false, fmt.Errorf("item height: %w", err)
	}
	return item, false, nil
}
