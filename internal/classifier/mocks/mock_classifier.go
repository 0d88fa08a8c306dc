package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wineapi/internal/model"
)

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, f model.Features) (model.Classification, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(model.Classification), args.Error(1)
}
