package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/rental"
	"rent-a-tool/internal/repository/memory"
)

var june1 = time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestCheckoutService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewCheckoutService(repo)

		repo.On("GetByCode", ctx, domain.CodeCHNS).Return(domain.NewChainsaw(domain.CodeCHNS, domain.BrandStihl), nil)
		repo.On("UpdateAttribute", ctx, domain.CodeCHNS, domain.AttributeCheckedOut, true).Return(nil)

		agreement, err := svc.Checkout(ctx, CheckoutRequest{Code: "chns", RentalDays: 7, DiscountPercent: 50, CheckoutDate: june1})
		require.NoError(t, err)
		assert.Equal(t, 5, agreement.ChargeableDays())
		assert.Equal(t, "3.72", agreement.FinalCharge().StringFixed(2))
		repo.AssertExpectations(t)
	})

	t.Run("Unknown code", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewCheckoutService(repo)

		_, err := svc.Checkout(ctx, CheckoutRequest{Code: "DRIL", RentalDays: 3, CheckoutDate: june1})
		assert.ErrorIs(t, err, domain.ErrUnknownCode)
		repo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})

	t.Run("Already checked out", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewCheckoutService(repo)

		out := domain.NewLadder(domain.CodeLADW, domain.BrandWerner, domain.WithCheckedOut(true))
		repo.On("GetByCode", ctx, domain.CodeLADW).Return(out, nil)

		_, err := svc.Checkout(ctx, CheckoutRequest{Code: "LADW", RentalDays: 3, CheckoutDate: june1})
		assert.ErrorIs(t, err, domain.ErrToolCheckedOut)
		repo.AssertNotCalled(t, "UpdateAttribute", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Validation failure leaves storage untouched", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewCheckoutService(repo)

		repo.On("GetByCode", ctx, domain.CodeJAKD).Return(domain.NewJackhammer(domain.CodeJAKD, domain.BrandDeWalt), nil)

		_, err := svc.Checkout(ctx, CheckoutRequest{Code: "JAKD", RentalDays: 5, DiscountPercent: 101, CheckoutDate: june1})
		var validationErr *rental.CheckoutValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "discount percent", validationErr.Field)
		repo.AssertNotCalled(t, "UpdateAttribute", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage failure on mark", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewCheckoutService(repo)

		repo.On("GetByCode", ctx, domain.CodeJAKR).Return(domain.NewJackhammer(domain.CodeJAKR, domain.BrandRidgid), nil)
		repo.On("UpdateAttribute", ctx, domain.CodeJAKR, domain.AttributeCheckedOut, true).Return(errors.New("db down"))

		agreement, err := svc.Checkout(ctx, CheckoutRequest{Code: "JAKR", RentalDays: 5, CheckoutDate: june1})
		assert.Nil(t, agreement)
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("Missing tool", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewCheckoutService(repo)

		repo.On("GetByCode", ctx, domain.CodeJAKR).Return(nil, domain.ErrToolNotFound)

		_, err := svc.Checkout(ctx, CheckoutRequest{Code: "JAKR", RentalDays: 5, CheckoutDate: june1})
		assert.ErrorIs(t, err, domain.ErrToolNotFound)
	})
}

func TestCheckoutService_ReturnTool(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewCheckoutService(repo)

		repo.On("GetByCode", ctx, domain.CodeLADW).
			Return(domain.NewLadder(domain.CodeLADW, domain.BrandWerner, domain.WithCheckedOut(true)), nil)
		repo.On("UpdateAttribute", ctx, domain.CodeLADW, domain.AttributeCheckedOut, false).Return(nil)

		tool, err := svc.ReturnTool(ctx, "ladw")
		require.NoError(t, err)
		assert.False(t, tool.CheckedOut)
		repo.AssertExpectations(t)
	})

	t.Run("Not checked out", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewCheckoutService(repo)

		repo.On("GetByCode", ctx, domain.CodeLADW).Return(domain.NewLadder(domain.CodeLADW, domain.BrandWerner), nil)

		_, err := svc.ReturnTool(ctx, "LADW")
		assert.ErrorIs(t, err, domain.ErrToolNotCheckedOut)
	})
}

func TestCheckoutService_GetAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewCheckoutService(memory.NewSeededToolRepository())

	tools, err := svc.ListTools(ctx)
	require.NoError(t, err)
	assert.Len(t, tools, 4)

	tool, err := svc.GetTool(ctx, " jakd ")
	require.NoError(t, err)
	assert.Equal(t, domain.BrandDeWalt, tool.Brand)

	_, err = svc.GetTool(ctx, "XXXX")
	assert.ErrorIs(t, err, domain.ErrUnknownCode)
}

func TestCheckoutService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewCheckoutService(memory.NewSeededToolRepository())

	req := CheckoutRequest{Code: "LADW", RentalDays: 3, DiscountPercent: 10, CheckoutDate: time.Date(2020, time.July, 2, 0, 0, 0, 0, time.UTC)}
	agreement, err := svc.Checkout(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "3.58", agreement.FinalCharge().StringFixed(2))

	_, err = svc.Checkout(ctx, req)
	assert.ErrorIs(t, err, domain.ErrToolCheckedOut)

	_, err = svc.ReturnTool(ctx, "LADW")
	require.NoError(t, err)

	_, err = svc.ReturnTool(ctx, "LADW")
	assert.ErrorIs(t, err, domain.ErrToolNotCheckedOut)

	_, err = svc.Checkout(ctx, req)
	assert.NoError(t, err)
}
