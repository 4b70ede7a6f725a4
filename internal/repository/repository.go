package repository

import (
	"context"

	"rent-a-tool/internal/domain"
)

// ToolRepository stores the rentable tool catalog. Implementations return
// copies; mutating a returned tool never changes the stored record.
type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByCode(ctx context.Context, code domain.Code) (*domain.Tool, error)
	List(ctx context.Context) ([]domain.Tool, error)
	UpdateAttribute(ctx context.Context, code domain.Code, attr domain.Attribute, value any) error
	Delete(ctx context.Context, code domain.Code) error
}
