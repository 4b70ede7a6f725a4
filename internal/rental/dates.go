package rental

import (
	"fmt"
	"strings"
	"time"
)

// CheckoutDateLayout accepts dates such as 7/2/20 or 07/02/20
const CheckoutDateLayout = "1/2/06"

// ParseCheckoutDate parses a clerk-entered M/d/yy date. Two-digit years
// always land in 2000-2099.
func ParseCheckoutDate(s string) (time.Time, error) {
	t, err := time.Parse(CheckoutDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("checkout date %q must follow the format MM/dd/yy: %w", s, err)
	}
	if t.Year() < 2000 {
		t = t.AddDate(100, 0, 0)
	}
	return t, nil
}
