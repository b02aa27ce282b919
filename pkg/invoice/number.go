package invoice

import (
	"fmt"
	"time"
)

// DueDateDays is the default payment window used for new and duplicated
// invoices.
const DueDateDays = 30

// NumberAt derives an invoice number from the given instant:
// "INV-" + YYYYMMDD + "-" + the last four digits of the epoch millis.
// Two calls within the same truncation window collide; uniqueness is
// best-effort and must be enforced by the store if required.
func NumberAt(t time.Time) string {
	millis := t.UnixMilli()
	return fmt.Sprintf("INV-%s-%04d", t.Format("20060102"), millis%10000)
}

// NewNumber returns a number for the current instant.
func NewNumber() string {
	return NumberAt(time.Now())
}

// DateString formats a time the way invoice and due dates are stored.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// DueDateAfter returns the default due date for an invoice issued at t.
func DueDateAfter(t time.Time) string {
	return DateString(t.AddDate(0, 0, DueDateDays))
}
