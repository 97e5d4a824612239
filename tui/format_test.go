package tui

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{50000, "Rp 50.000"},
		{211000, "Rp 211.000"},
		{1500000, "Rp 1.500.000"},
		{-25000, "-Rp 25.000"},
	}
	for _, tc := range cases {
		if got := formatRupiah(tc.amount); got != tc.want {
			t.Fatalf("formatRupiah(%d): want %q, got %q", tc.amount, tc.want, got)
		}
	}
}

func TestFormatBookingDate(t *testing.T) {
	if got := formatBookingDate("2026-09-01"); got != "1 September 2026" {
		t.Fatalf("unexpected formatted date: %q", got)
	}
	// Unparseable input passes through unchanged.
	if got := formatBookingDate("soon"); got != "soon" {
		t.Fatalf("unexpected passthrough: %q", got)
	}
}

func TestValidDateInput(t *testing.T) {
	if !validDateInput("2026-09-01") {
		t.Fatal("expected valid date")
	}
	for _, input := range []string{"", "01-09-2026", "2026-13-01", "tomorrow"} {
		if validDateInput(input) {
			t.Fatalf("expected %q to be invalid", input)
		}
	}
}

func TestValidTimeInput(t *testing.T) {
	if !validTimeInput("19:30") {
		t.Fatal("expected valid time")
	}
	for _, input := range []string{"", "25:00", "19:65", "7pm"} {
		if validTimeInput(input) {
			t.Fatalf("expected %q to be invalid", input)
		}
	}
}
