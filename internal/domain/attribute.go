package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Attribute names a single updatable field of a Tool
type Attribute string

const (
	AttributeCode             Attribute = "code"
	AttributeType             Attribute = "type"
	AttributeBrand            Attribute = "brand"
	AttributeDailyCharge      Attribute = "daily_charge"
	AttributeChargeOnWeekdays Attribute = "charge_on_weekdays"
	AttributeChargeOnWeekends Attribute = "charge_on_weekends"
	AttributeChargeOnHolidays Attribute = "charge_on_holidays"
	AttributeCheckedOut       Attribute = "checked_out"
)

var attributeLabels = map[Attribute]string{
	AttributeCode:             "Code",
	AttributeType:             "Type",
	AttributeBrand:            "Brand",
	AttributeDailyCharge:      "Daily charge",
	AttributeChargeOnWeekdays: "Weekday charge",
	AttributeChargeOnWeekends: "Weekend charge",
	AttributeChargeOnHolidays: "Holiday charge",
	AttributeCheckedOut:       "Checked out",
}

func (a Attribute) String() string {
	if label, ok := attributeLabels[a]; ok {
		return label
	}
	return string(a)
}

// SetAttribute assigns value to the field named by attr. The value must have
// the field's Go type; on mismatch the tool is left unchanged.
func (t *Tool) SetAttribute(attr Attribute, value any) error {
	mismatch := func() error {
		return fmt.Errorf("%w: %s cannot be set to %T", ErrInvalidAttribute, attr, value)
	}

	switch attr {
	case AttributeCode:
		v, ok := value.(Code)
		if !ok {
			return mismatch()
		}
		t.Code = v
	case AttributeType:
		v, ok := value.(ToolType)
		if !ok {
			return mismatch()
		}
		t.Type = v
	case AttributeBrand:
		v, ok := value.(Brand)
		if !ok {
			return mismatch()
		}
		t.Brand = v
	case AttributeDailyCharge:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return mismatch()
		}
		if v.IsNegative() {
			return fmt.Errorf("%w: daily charge must not be negative", ErrInvalidAttribute)
		}
		t.DailyCharge = v
	case AttributeChargeOnWeekdays, AttributeChargeOnWeekends, AttributeChargeOnHolidays, AttributeCheckedOut:
		v, ok := value.(bool)
		if !ok {
			return mismatch()
		}
		switch attr {
		case AttributeChargeOnWeekdays:
			t.ChargeOnWeekdays = v
		case AttributeChargeOnWeekends:
			t.ChargeOnWeekends = v
		case AttributeChargeOnHolidays:
			t.ChargeOnHolidays = v
		default:
			t.CheckedOut = v
		}
	default:
		return fmt.Errorf("%w: unknown attribute %q", ErrInvalidAttribute, string(attr))
	}
	return nil
}
