package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Code string

const (
	CodeCHNS Code = "CHNS"
	CodeLADW Code = "LADW"
	CodeJAKD Code = "JAKD"
	CodeJAKR Code = "JAKR"
)

var knownCodes = []Code{CodeCHNS, CodeLADW, CodeJAKD, CodeJAKR}

// ParseCode accepts a tool code in any case, with surrounding whitespace
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range knownCodes {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCode, s)
}

func (c Code) String() string {
	return string(c)
}

type ToolType string

const (
	ToolTypeChainsaw   ToolType = "Chainsaw"
	ToolTypeLadder     ToolType = "Ladder"
	ToolTypeJackhammer ToolType = "Jackhammer"
)

var knownTypes = []ToolType{ToolTypeChainsaw, ToolTypeLadder, ToolTypeJackhammer}

func ParseToolType(s string) (ToolType, error) {
	for _, known := range knownTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown tool type %q", s)
}

func (t ToolType) String() string {
	return string(t)
}

type Brand string

const (
	BrandStihl  Brand = "Stihl"
	BrandWerner Brand = "Werner"
	BrandDeWalt Brand = "DeWalt"
	BrandRidgid Brand = "Ridgid"
)

var knownBrands = []Brand{BrandStihl, BrandWerner, BrandDeWalt, BrandRidgid}

func ParseBrand(s string) (Brand, error) {
	for _, known := range knownBrands {
		if strings.EqualFold(strings.TrimSpace(s), string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown brand %q", s)
}

func (b Brand) String() string {
	return string(b)
}

// Tool is a rentable item together with the policy that decides which
// rental days are billed.
type Tool struct {
	Code             Code            `json:"code"`
	Type             ToolType        `json:"type"`
	Brand            Brand           `json:"brand"`
	DailyCharge      decimal.Decimal `json:"daily_charge"`
	ChargeOnWeekdays bool            `json:"charge_on_weekdays"`
	ChargeOnWeekends bool            `json:"charge_on_weekends"`
	ChargeOnHolidays bool            `json:"charge_on_holidays"`
	CheckedOut       bool            `json:"checked_out"`
}

func (t Tool) String() string {
	return fmt.Sprintf(
		"Code: %s\nType: %s\nBrand: %s\nDaily Charge: %s\nCharge On Weekdays: %s\nCharge on Weekends: %s\nCharge on Holidays: %s\n",
		t.Code, t.Type, t.Brand,
		t.DailyCharge.StringFixed(2),
		yesNo(t.ChargeOnWeekdays),
		yesNo(t.ChargeOnWeekends),
		yesNo(t.ChargeOnHolidays),
	)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// ToolOption customises a preset tool
type ToolOption func(*Tool)

// WithDailyCharge overrides the preset daily charge
func WithDailyCharge(charge decimal.Decimal) ToolOption {
	return func(t *Tool) {
		t.DailyCharge = charge
	}
}

// WithChargePolicy overrides which kinds of days are billed
func WithChargePolicy(weekdays, weekends, holidays bool) ToolOption {
	return func(t *Tool) {
		t.ChargeOnWeekdays = weekdays
		t.ChargeOnWeekends = weekends
		t.ChargeOnHolidays = holidays
	}
}

// WithCheckedOut sets the initial checked-out status
func WithCheckedOut(checkedOut bool) ToolOption {
	return func(t *Tool) {
		t.CheckedOut = checkedOut
	}
}

func newTool(base Tool, opts []ToolOption) *Tool {
	t := base
	for _, opt := range opts {
		opt(&t)
	}
	return &t
}

// NewChainsaw bills weekdays and holidays at $1.49 per day
func NewChainsaw(code Code, brand Brand, opts ...ToolOption) *Tool {
	return newTool(Tool{
		Code:             code,
		Type:             ToolTypeChainsaw,
		Brand:            brand,
		DailyCharge:      decimal.RequireFromString("1.49"),
		ChargeOnWeekdays: true,
		ChargeOnWeekends: false,
		ChargeOnHolidays: true,
	}, opts)
}

// NewLadder bills weekdays and weekends at $1.99 per day
func NewLadder(code Code, brand Brand, opts ...ToolOption) *Tool {
	return newTool(Tool{
		Code:             code,
		Type:             ToolTypeLadder,
		Brand:            brand,
		DailyCharge:      decimal.RequireFromString("1.99"),
		ChargeOnWeekdays: true,
		ChargeOnWeekends: true,
		ChargeOnHolidays: false,
	}, opts)
}

// NewJackhammer bills weekdays only at $2.99 per day
func NewJackhammer(code Code, brand Brand, opts ...ToolOption) *Tool {
	return newTool(Tool{
		Code:             code,
		Type:             ToolTypeJackhammer,
		Brand:            brand,
		DailyCharge:      decimal.RequireFromString("2.99"),
		ChargeOnWeekdays: true,
		ChargeOnWeekends: false,
		ChargeOnHolidays: false,
	}, opts)
}

// DefaultCatalog returns the tools stocked by a fresh store
func DefaultCatalog() []*Tool {
	return []*Tool{
		NewChainsaw(CodeCHNS, BrandStihl),
		NewLadder(CodeLADW, BrandWerner),
		NewJackhammer(CodeJAKD, BrandDeWalt),
		NewJackhammer(CodeJAKR, BrandRidgid),
	}
}
