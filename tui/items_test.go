package tui

import (
	"testing"

	"bioskopi-cli/model"
)

func TestBuildFilmItems_SortsByTitle(t *testing.T) {
	items := buildFilmItems([]model.Film{
		{Id: "1", Title: "Pengabdi Setan"},
		{Id: "2", Title: "Filosofi Kopi"},
		{Id: "3", Title: "laskar Pelangi"},
	})
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	got := []string{
		items[0].(filmItem).film.Title,
		items[1].(filmItem).film.Title,
		items[2].(filmItem).film.Title,
	}
	want := []string{"Filosofi Kopi", "laskar Pelangi", "Pengabdi Setan"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBuildBookingItems_NewestFirst(t *testing.T) {
	items := buildBookingItems([]model.Booking{
		{Id: "1", Date: "2026-08-01", Time: "14:00"},
		{Id: "2", Date: "2026-09-01", Time: "19:30"},
		{Id: "3", Date: "2026-09-01", Time: "21:00"},
	})
	got := []string{
		items[0].(bookingItem).booking.Id,
		items[1].(bookingItem).booking.Id,
		items[2].(bookingItem).booking.Id,
	}
	want := []string{"3", "2", "1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: want booking %s, got %s", i, want[i], got[i])
		}
	}
}

func TestFilmItemDescription(t *testing.T) {
	item := filmItem{film: model.Film{Title: "Filosofi Kopi", Genre: "Drama", Year: 2015, Duration: 117}}
	if got := item.Description(); got != "Drama • 2015 • 117 min" {
		t.Fatalf("unexpected description: %q", got)
	}

	sparse := filmItem{film: model.Film{Title: "Untitled"}}
	if got := sparse.Description(); got != "" {
		t.Fatalf("expected empty description, got %q", got)
	}
}
