package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wineapi/internal/model"
)

type MockWineRepository struct {
	mock.Mock
}

func (m *MockWineRepository) Insert(ctx context.Context, rec *model.WineRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWineRepository) List(ctx context.Context) ([]model.WineRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WineRecord), args.Error(1)
}

func (m *MockWineRepository) Update(ctx context.Context, id int64, rec *model.WineRecord) (bool, error) {
	args := m.Called(ctx, id, rec)
	return args.Bool(0), args.Error(1)
}

func (m *MockWineRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
