package rental

import (
	"fmt"
	"io"
	"strings"
)

// ReportDateLayout is MM/DD/YY
const ReportDateLayout = "01/02/06"

// String renders the agreement report without a trailing newline
func (a *Agreement) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tool code: %s\n", a.tool.Code)
	fmt.Fprintf(&b, "Tool type: %s\n", a.tool.Type)
	fmt.Fprintf(&b, "Tool brand: %s\n", a.tool.Brand)
	fmt.Fprintf(&b, "Rental days: %d\n", a.rentalDays)
	fmt.Fprintf(&b, "Check out date: %s\n", a.checkoutDate.Format(ReportDateLayout))
	fmt.Fprintf(&b, "Due date: %s\n", a.dueDate.Format(ReportDateLayout))
	fmt.Fprintf(&b, "Daily rental charge: %s\n", FormatCurrency(a.tool.DailyCharge))
	fmt.Fprintf(&b, "Charge days: %d\n", a.chargeableDays)
	fmt.Fprintf(&b, "Pre-discount charge: %s\n", FormatCurrency(a.preDiscountCharge))
	fmt.Fprintf(&b, "Discount percent: %d%%\n", a.discountPercent)
	fmt.Fprintf(&b, "Discount amount: %s\n", FormatCurrency(a.discountAmount))
	fmt.Fprintf(&b, "Final charge: %s", FormatCurrency(a.finalCharge))
	return b.String()
}

// Print writes the report followed by a newline to w and returns the report
func (a *Agreement) Print(w io.Writer) (string, error) {
	report := a.String()
	if _, err := fmt.Fprintln(w, report); err != nil {
		return report, fmt.Errorf("failed to write rental agreement: %w", err)
	}
	return report, nil
}
