package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"bioskopi-cli/model"
)

// CreateBookingInput is the payload for a new booking. RequestID is a
// client-generated idempotency key: a double-tapped submit resends the
// same key, so the backend can dedupe instead of double-booking.
type CreateBookingInput struct {
	UserId    string
	FilmId    string
	CafeId    string
	Date      string
	Time      string
	Seats     []string
	Menu      map[string]int
	Total     int64
	RequestID string
}

// CreateBooking submits a booking draft. Client-side preconditions (seat
// count, balance) must already have been checked; the server still has the
// final word and answers failures as DomainErrors.
func (c *Client) CreateBooking(ctx context.Context, in CreateBookingInput) error {
	if in.UserId == "" || in.FilmId == "" || in.CafeId == "" {
		return errors.New("user, film and cafe ids are required")
	}
	if len(in.Seats) == 0 {
		return errors.New("at least one seat is required")
	}

	form := url.Values{}
	form.Set("user_id", in.UserId)
	form.Set("film_id", in.FilmId)
	form.Set("cafe_id", in.CafeId)
	form.Set("pemesanan_tanggal", in.Date)
	form.Set("pemesanan_jam", in.Time)
	form.Set("pemesanan_kursi", strings.Join(in.Seats, ","))
	form.Set("pemesanan_jumlah_kursi", strconv.Itoa(len(in.Seats)))
	form.Set("pemesanan_harga_total", strconv.FormatInt(in.Total, 10))
	form.Set("request_id", in.RequestID)
	for itemID, qty := range in.Menu {
		if qty > 0 {
			form.Set(fmt.Sprintf("menu[%s]", itemID), strconv.Itoa(qty))
		}
	}

	return c.postForm(ctx, "pemesanan.php", form, nil)
}

// ListBookingsByUser returns all bookings made by a user.
func (c *Client) ListBookingsByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	query := url.Values{"user_id": {userID}}

	var bookings []model.Booking
	if err := c.getData(ctx, "pemesanan.php", query, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking fetches a single booking by id.
func (c *Client) GetBooking(ctx context.Context, bookingID string) (model.Booking, error) {
	if bookingID == "" {
		return model.Booking{}, errors.New("booking id is required")
	}
	query := url.Values{"pemesanan_id": {bookingID}}

	var booking model.Booking
	if err := c.getData(ctx, "pemesanan.php", query, &booking); err != nil {
		return model.Booking{}, err
	}
	if booking.Id == "" {
		return model.Booking{}, errors.New("booking not found")
	}
	return booking, nil
}

// CancelBooking asks the backend to cancel a pending booking.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return errors.New("booking id is required")
	}
	form := url.Values{}
	form.Set("action", "cancel")
	form.Set("pemesanan_id", bookingID)

	return c.postForm(ctx, "pemesanan.php", form, nil)
}
