package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatRupiah renders a whole-rupiah amount with dot grouping, e.g.
// 211000 -> "Rp 211.000". Amounts carry no fractional part.
func formatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}

func formatBookingDate(date string) string {
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return parsed.Format("2 January 2006")
}

func validDateInput(date string) bool {
	_, err := time.Parse(time.DateOnly, strings.TrimSpace(date))
	return err == nil
}

func validTimeInput(value string) bool {
	_, err := time.Parse("15:04", strings.TrimSpace(value))
	return err == nil
}

func formatDuration(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}
