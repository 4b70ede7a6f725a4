// Package rental computes the charges owed for a single tool checkout.
//
// An Agreement is built once from a tool snapshot and the checkout
// parameters. Every derived field is computed during construction and the
// value is never modified afterwards; a changed checkout needs a new
// Agreement.
package rental

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rent-a-tool/internal/domain"
)

const (
	MinRentalDays      = 1
	MinDiscountPercent = 0
	MaxDiscountPercent = 100
)

// CheckoutValidationError reports checkout input that cannot produce an
// agreement
type CheckoutValidationError struct {
	Field   string
	Message string
}

func (e *CheckoutValidationError) Error() string {
	return fmt.Sprintf("invalid checkout %s: %s", e.Field, e.Message)
}

// Agreement is the frozen result of a checkout calculation
type Agreement struct {
	tool            domain.Tool
	rentalDays      int
	discountPercent int
	checkoutDate    time.Time
	dueDate         time.Time

	chargeableDays    int
	preDiscountCharge decimal.Decimal
	discountAmount    decimal.Decimal
	finalCharge       decimal.Decimal
}

// NewAgreement validates the checkout inputs and computes every charge.
// The tool is copied, so later changes to it do not affect the agreement.
// A time-of-day on checkoutDate is ignored.
func NewAgreement(tool *domain.Tool, rentalDays, discountPercent int, checkoutDate time.Time) (*Agreement, error) {
	if err := validate(tool, rentalDays, discountPercent, checkoutDate); err != nil {
		return nil, err
	}

	a := &Agreement{
		tool:            *tool,
		rentalDays:      rentalDays,
		discountPercent: discountPercent,
		checkoutDate:    truncateToDate(checkoutDate),
	}
	a.dueDate = a.checkoutDate.AddDate(0, 0, rentalDays)
	a.chargeableDays = chargeableDays(a.tool, a.rentalDays, a.checkoutDate, a.dueDate)
	a.preDiscountCharge = preDiscountCharge(a.tool.DailyCharge, a.chargeableDays)
	a.discountAmount = discountAmount(a.preDiscountCharge, a.discountPercent)
	a.finalCharge = finalCharge(a.preDiscountCharge, a.discountAmount)

	return a, nil
}

func validate(tool *domain.Tool, rentalDays, discountPercent int, checkoutDate time.Time) error {
	if tool == nil {
		return &CheckoutValidationError{Field: "tool", Message: "a tool is required"}
	}
	if tool.DailyCharge.IsNegative() {
		return &CheckoutValidationError{Field: "daily charge", Message: "daily charge must not be negative"}
	}
	if rentalDays < MinRentalDays {
		return &CheckoutValidationError{
			Field:   "rental days",
			Message: fmt.Sprintf("rental day count must be %d or greater, got %d", MinRentalDays, rentalDays),
		}
	}
	if discountPercent < MinDiscountPercent || discountPercent > MaxDiscountPercent {
		return &CheckoutValidationError{
			Field:   "discount percent",
			Message: fmt.Sprintf("discount percent must be in the range %d-%d, got %d", MinDiscountPercent, MaxDiscountPercent, discountPercent),
		}
	}
	if checkoutDate.IsZero() {
		return &CheckoutValidationError{Field: "checkout date", Message: "a checkout date is required"}
	}
	return nil
}

// Tool returns the snapshot the agreement was computed from
func (a *Agreement) Tool() domain.Tool {
	return a.tool
}

func (a *Agreement) Code() domain.Code {
	return a.tool.Code
}

func (a *Agreement) Type() domain.ToolType {
	return a.tool.Type
}

func (a *Agreement) Brand() domain.Brand {
	return a.tool.Brand
}

func (a *Agreement) DailyCharge() decimal.Decimal {
	return a.tool.DailyCharge
}

func (a *Agreement) RentalDays() int {
	return a.rentalDays
}

func (a *Agreement) DiscountPercent() int {
	return a.discountPercent
}

func (a *Agreement) CheckoutDate() time.Time {
	return a.checkoutDate
}

// DueDate is the checkout date plus the rental day count
func (a *Agreement) DueDate() time.Time {
	return a.dueDate
}

func (a *Agreement) ChargeableDays() int {
	return a.chargeableDays
}

func (a *Agreement) PreDiscountCharge() decimal.Decimal {
	return a.preDiscountCharge
}

func (a *Agreement) DiscountAmount() decimal.Decimal {
	return a.discountAmount
}

func (a *Agreement) FinalCharge() decimal.Decimal {
	return a.finalCharge
}
