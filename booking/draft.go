package booking

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"bioskopi-cli/model"
	"bioskopi-cli/service"
)

// MaxSeats is the per-booking seat limit.
const MaxSeats = 8

var (
	// ErrNoSeats blocks submission of a draft with an empty selection.
	ErrNoSeats = errors.New("no seats selected")
	// ErrTooManySeats rejects a toggle that would exceed MaxSeats.
	ErrTooManySeats = errors.New("maximum 8 seats per booking")
	// ErrInsufficientFunds blocks submission when the total exceeds the
	// wallet balance.
	ErrInsufficientFunds = errors.New("insufficient balance")
)

// Draft is the in-memory candidate reservation being assembled on the
// booking form. It exists only for the duration of one booking flow and
// is discarded on submit or navigation away.
type Draft struct {
	CafeId string
	Date   string
	Time   string

	seatPrice  int64
	menu       []model.MenuItem
	booked     map[string]bool
	selected   []string
	quantities map[string]int
	requestID  string
}

// NewDraft starts a fresh draft. booked holds seats already reserved by
// others for this showing; they can never be selected. The menu catalog
// pre-seeds every quantity at zero. A new idempotency key is generated
// here and reused for every submit of this draft.
func NewDraft(seatPrice int64, menu []model.MenuItem, booked []string) *Draft {
	bookedSet := make(map[string]bool, len(booked))
	for _, id := range booked {
		if ValidSeatID(id) {
			bookedSet[id] = true
		}
	}
	quantities := make(map[string]int, len(menu))
	for _, item := range menu {
		quantities[item.Id] = 0
	}
	return &Draft{
		seatPrice:  seatPrice,
		menu:       menu,
		booked:     bookedSet,
		quantities: quantities,
		requestID:  uuid.NewString(),
	}
}

// ToggleSeat flips the selection state of a seat. Seats in the booked set
// are never selectable and toggling them is a silent no-op. Adding a ninth
// seat fails with ErrTooManySeats and leaves the selection unchanged.
func (d *Draft) ToggleSeat(seatID string) error {
	if !ValidSeatID(seatID) || d.booked[seatID] {
		return nil
	}
	idx := sort.SearchStrings(d.selected, seatID)
	if idx < len(d.selected) && d.selected[idx] == seatID {
		d.selected = append(d.selected[:idx], d.selected[idx+1:]...)
		return nil
	}
	if len(d.selected) >= MaxSeats {
		return ErrTooManySeats
	}
	d.selected = append(d.selected, "")
	copy(d.selected[idx+1:], d.selected[idx:])
	d.selected[idx] = seatID
	return nil
}

// IsSelected reports whether a seat is in the current selection.
func (d *Draft) IsSelected(seatID string) bool {
	idx := sort.SearchStrings(d.selected, seatID)
	return idx < len(d.selected) && d.selected[idx] == seatID
}

// IsBooked reports whether a seat was already reserved by someone else.
func (d *Draft) IsBooked(seatID string) bool {
	return d.booked[seatID]
}

// SelectedSeats returns the selection in sorted display order.
func (d *Draft) SelectedSeats() []string {
	return append([]string(nil), d.selected...)
}

// SeatCount returns the size of the current selection.
func (d *Draft) SeatCount() int {
	return len(d.selected)
}

// ChangeQuantity adjusts a menu item's quantity by delta, clamped at
// zero. Ids outside the pre-seeded catalog are ignored.
func (d *Draft) ChangeQuantity(itemID string, delta int) {
	current, ok := d.quantities[itemID]
	if !ok {
		return
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	d.quantities[itemID] = next
}

// SetMenu replaces the menu catalog, reseeding every quantity at zero.
// Used when the selected café changes; the seat selection is unaffected.
func (d *Draft) SetMenu(menu []model.MenuItem) {
	d.menu = menu
	d.quantities = make(map[string]int, len(menu))
	for _, item := range menu {
		d.quantities[item.Id] = 0
	}
}

// Quantity returns the current quantity for a menu item.
func (d *Draft) Quantity(itemID string) int {
	return d.quantities[itemID]
}

// Menu returns the catalog the draft was seeded with.
func (d *Draft) Menu() []model.MenuItem {
	return d.menu
}

// SeatPrice returns the per-seat ticket price.
func (d *Draft) SeatPrice() int64 {
	return d.seatPrice
}

// TicketTotal is selected seats times the per-seat price.
func (d *Draft) TicketTotal() int64 {
	return int64(len(d.selected)) * d.seatPrice
}

// MenuTotal sums quantity times unit price over the catalog.
func (d *Draft) MenuTotal() int64 {
	var total int64
	for _, item := range d.menu {
		total += int64(d.quantities[item.Id]) * item.Price
	}
	return total
}

// GrandTotal is the full amount the wallet will be charged.
func (d *Draft) GrandTotal() int64 {
	return d.TicketTotal() + d.MenuTotal()
}

// Validate checks the submit preconditions against the wallet balance.
// It must pass before any network call is issued.
func (d *Draft) Validate(balance int64) error {
	if len(d.selected) == 0 {
		return ErrNoSeats
	}
	if d.GrandTotal() > balance {
		return ErrInsufficientFunds
	}
	return nil
}

// RequestID is the idempotency key attached to every submit of this
// draft.
func (d *Draft) RequestID() string {
	return d.requestID
}

// Request builds the submission payload for the booking API.
func (d *Draft) Request(user model.User, filmID string) service.CreateBookingInput {
	menu := make(map[string]int, len(d.quantities))
	for id, qty := range d.quantities {
		if qty > 0 {
			menu[id] = qty
		}
	}
	return service.CreateBookingInput{
		UserId:    user.Id,
		FilmId:    filmID,
		CafeId:    d.CafeId,
		Date:      d.Date,
		Time:      d.Time,
		Seats:     d.SelectedSeats(),
		Menu:      menu,
		Total:     d.GrandTotal(),
		RequestID: d.requestID,
	}
}
