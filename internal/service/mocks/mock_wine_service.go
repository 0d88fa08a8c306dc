package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wineapi/internal/model"
)

type MockWineService struct {
	mock.Mock
}

func (m *MockWineService) Create(ctx context.Context, sample model.WineSample) (*model.WineRecord, error) {
	args := m.Called(ctx, sample)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WineRecord), args.Error(1)
}

func (m *MockWineService) List(ctx context.Context) ([]model.WineRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WineRecord), args.Error(1)
}

func (m *MockWineService) Update(ctx context.Context, id int64, sample model.WineSample) (*model.WineRecord, error) {
	args := m.Called(ctx, id, sample)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WineRecord), args.Error(1)
}

func (m *MockWineService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
