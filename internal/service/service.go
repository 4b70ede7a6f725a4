package service

import (
	"context"
	"time"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/rental"
)

// CheckoutRequest carries the clerk-supplied inputs of a checkout
type CheckoutRequest struct {
	Code            string
	RentalDays      int
	DiscountPercent int
	CheckoutDate    time.Time
}

type CheckoutService interface {
	ListTools(ctx context.Context) ([]domain.Tool, error)
	GetTool(ctx context.Context, code string) (*domain.Tool, error)
	Checkout(ctx context.Context, req CheckoutRequest) (*rental.Agreement, error)
	ReturnTool(ctx context.Context, code string) (*domain.Tool, error)
}
