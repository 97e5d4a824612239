package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"bioskopi-cli/model"
)

type filmItem struct {
	film model.Film
}

func (f filmItem) Title() string {
	return f.film.Title
}

func (f filmItem) Description() string {
	parts := []string{}
	if f.film.Genre != "" {
		parts = append(parts, f.film.Genre)
	}
	if f.film.Year > 0 {
		parts = append(parts, fmt.Sprintf("%d", f.film.Year))
	}
	if f.film.Duration > 0 {
		parts = append(parts, formatDuration(f.film.Duration))
	}
	return strings.Join(parts, " • ")
}

func (f filmItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{f.film.Title, f.film.Genre}, " "))
}

type cafeItem struct {
	cafe model.Cafe
}

func (c cafeItem) Title() string {
	return c.cafe.Name
}

func (c cafeItem) Description() string {
	parts := []string{}
	if c.cafe.Location != "" {
		parts = append(parts, c.cafe.Location)
	}
	if c.cafe.OpensAt != "" && c.cafe.ClosesAt != "" {
		parts = append(parts, fmt.Sprintf("%s - %s", c.cafe.OpensAt, c.cafe.ClosesAt))
	}
	return strings.Join(parts, " • ")
}

func (c cafeItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{c.cafe.Name, c.cafe.Location}, " "))
}

type bookingItem struct {
	booking model.Booking
}

func (b bookingItem) Title() string {
	return fmt.Sprintf("%s %s • %d seats", b.booking.Date, b.booking.Time, b.booking.SeatCount)
}

func (b bookingItem) Description() string {
	return fmt.Sprintf("%s • %s", formatRupiah(b.booking.Total), strings.ToUpper(b.booking.Status))
}

func (b bookingItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{b.booking.Date, b.booking.Status}, " "))
}

func buildFilmItems(films []model.Film) []list.Item {
	sorted := append([]model.Film{}, films...)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})
	items := make([]list.Item, 0, len(sorted))
	for _, film := range sorted {
		items = append(items, filmItem{film: film})
	}
	return items
}

func buildCafeItems(cafes []model.Cafe) []list.Item {
	sorted := append([]model.Cafe{}, cafes...)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	items := make([]list.Item, 0, len(sorted))
	for _, cafe := range sorted {
		items = append(items, cafeItem{cafe: cafe})
	}
	return items
}

func buildBookingItems(bookings []model.Booking) []list.Item {
	sorted := append([]model.Booking{}, bookings...)
	// Newest first; the backend returns dates as YYYY-MM-DD so string
	// order is date order.
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].Time > sorted[j].Time
	})
	items := make([]list.Item, 0, len(sorted))
	for _, booking := range sorted {
		items = append(items, bookingItem{booking: booking})
	}
	return items
}
