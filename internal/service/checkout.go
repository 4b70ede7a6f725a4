package service

import (
	"context"
	"fmt"
	"sync"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/rental"
	"rent-a-tool/internal/repository"
)

type checkoutService struct {
	toolRepo repository.ToolRepository

	// serialises the read-check-write of the checked-out flag
	mu sync.Mutex
}

func NewCheckoutService(toolRepo repository.ToolRepository) CheckoutService {
	return &checkoutService{toolRepo: toolRepo}
}

func (s *checkoutService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.List(ctx)
}

func (s *checkoutService) GetTool(ctx context.Context, code string) (*domain.Tool, error) {
	c, err := domain.ParseCode(code)
	if err != nil {
		return nil, err
	}
	return s.toolRepo.GetByCode(ctx, c)
}

func (s *checkoutService) Checkout(ctx context.Context, req CheckoutRequest) (*rental.Agreement, error) {
	logger.EnterMethod("checkoutService.Checkout", "code", req.Code, "rentalDays", req.RentalDays, "discountPercent", req.DiscountPercent)

	code, err := domain.ParseCode(req.Code)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tool, err := s.toolRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if tool.CheckedOut {
		logger.Info("Checkout refused, tool already out", "code", code)
		return nil, fmt.Errorf("checkout %s: %w", code, domain.ErrToolCheckedOut)
	}

	agreement, err := rental.NewAgreement(tool, req.RentalDays, req.DiscountPercent, req.CheckoutDate)
	if err != nil {
		logger.Info("Checkout rejected", "code", code, logger.Err(err))
		return nil, err
	}

	if err := s.toolRepo.UpdateAttribute(ctx, code, domain.AttributeCheckedOut, true); err != nil {
		logger.ExitMethodWithError("checkoutService.Checkout", err, "code", code)
		return nil, fmt.Errorf("mark %s checked out: %w", code, err)
	}

	logger.ExitMethod("checkoutService.Checkout", "code", code,
		"dueDate", agreement.DueDate().Format(rental.ReportDateLayout),
		"finalCharge", agreement.FinalCharge().StringFixed(2))
	return agreement, nil
}

func (s *checkoutService) ReturnTool(ctx context.Context, code string) (*domain.Tool, error) {
	logger.EnterMethod("checkoutService.ReturnTool", "code", code)

	c, err := domain.ParseCode(code)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tool, err := s.toolRepo.GetByCode(ctx, c)
	if err != nil {
		return nil, err
	}
	if !tool.CheckedOut {
		return nil, fmt.Errorf("return %s: %w", c, domain.ErrToolNotCheckedOut)
	}
	if err := s.toolRepo.UpdateAttribute(ctx, c, domain.AttributeCheckedOut, false); err != nil {
		logger.ExitMethodWithError("checkoutService.ReturnTool", err, "code", c)
		return nil, fmt.Errorf("mark %s returned: %w", c, err)
	}
	tool.CheckedOut = false

	logger.ExitMethod("checkoutService.ReturnTool", "code", c)
	return tool, nil
}
