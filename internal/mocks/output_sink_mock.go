// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockOutputSink struct {
	mock.Mock
}

func (m *MockOutputSink) Emit(line string) {
	m.Called(line)
}
