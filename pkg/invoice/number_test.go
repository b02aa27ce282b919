package invoice_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/invoicepress/invoicepress/pkg/invoice"
)

func TestNumberAt(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	got := invoice.NumberAt(at)
	assert.Regexp(t, regexp.MustCompile(`^INV-20240101-\d{4}$`), got)

	// The suffix is the last four digits of the epoch millis.
	want := fmt.Sprintf("%04d", at.UnixMilli()%10000)
	assert.Equal(t, want, got[len(got)-4:])
}

func TestNumberAtSuffixPadding(t *testing.T) {
	// Epoch millis ending in 0007 must keep the leading zeros.
	at := time.UnixMilli(1700000000007).UTC()
	got := invoice.NumberAt(at)
	assert.Equal(t, "0007", got[len(got)-4:])
}

func TestDueDateAfter(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-31", invoice.DueDateAfter(at))
	assert.Equal(t, "2024-01-01", invoice.DateString(at))
}
