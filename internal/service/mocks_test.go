package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rent-a-tool/internal/domain"
)

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) GetByCode(ctx context.Context, code domain.Code) (*domain.Tool, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) List(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) UpdateAttribute(ctx context.Context, code domain.Code, attr domain.Attribute, value any) error {
	args := m.Called(ctx, code, attr, value)
	return args.Error(0)
}
func (m *MockToolRepo) Delete(ctx context.Context, code domain.Code) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}
