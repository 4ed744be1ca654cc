// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/rocket-sim/internal/domain/model"
)

type MockItemSource struct {
	mock.Mock
}

func (m *MockItemSource) Next(ctx context.Context) (model.CargoItem, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.CargoItem), args.Bool(1), args.Error(2)
}
