package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bioskopi-cli/model"
	"bioskopi-cli/service"
)

var testMenu = []model.MenuItem{
	{Id: "11", Name: "Popcorn Caramel", Price: 25000, Category: model.CategoryFood},
	{Id: "12", Name: "Es Kopi Susu", Price: 18000, Category: model.CategoryDrink},
}

func TestToggleSeat_SelectAndDeselect(t *testing.T) {
	d := NewDraft(50000, testMenu, nil)

	require.NoError(t, d.ToggleSeat("B3"))
	require.NoError(t, d.ToggleSeat("A1"))
	assert.Equal(t, []string{"A1", "B3"}, d.SelectedSeats())
	assert.True(t, d.IsSelected("A1"))

	require.NoError(t, d.ToggleSeat("A1"))
	assert.Equal(t, []string{"B3"}, d.SelectedSeats())
	assert.False(t, d.IsSelected("A1"))
}

func TestToggleSeat_BookedSeatIsSilentNoOp(t *testing.T) {
	d := NewDraft(50000, testMenu, []string{"D5", "D6"})

	require.NoError(t, d.ToggleSeat("D5"))
	assert.Empty(t, d.SelectedSeats())
	assert.True(t, d.IsBooked("D5"))
	assert.False(t, d.IsSelected("D5"))
}

func TestToggleSeat_InvalidIDIsSilentNoOp(t *testing.T) {
	d := NewDraft(50000, testMenu, nil)

	require.NoError(t, d.ToggleSeat("Z9"))
	require.NoError(t, d.ToggleSeat(""))
	assert.Empty(t, d.SelectedSeats())
}

func TestToggleSeat_LimitIsEight(t *testing.T) {
	d := NewDraft(50000, testMenu, nil)

	for _, id := range []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8"} {
		require.NoError(t, d.ToggleSeat(id))
	}
	assert.Equal(t, MaxSeats, d.SeatCount())

	err := d.ToggleSeat("B1")
	assert.ErrorIs(t, err, ErrTooManySeats)
	assert.Equal(t, MaxSeats, d.SeatCount())

	// Deselecting one of the eight must still work.
	require.NoError(t, d.ToggleSeat("A4"))
	assert.Equal(t, 7, d.SeatCount())
}

func TestChangeQuantity_ClampsAtZero(t *testing.T) {
	d := NewDraft(50000, testMenu, nil)

	d.ChangeQuantity("11", 1)
	d.ChangeQuantity("11", 1)
	assert.Equal(t, 2, d.Quantity("11"))

	d.ChangeQuantity("11", -1)
	d.ChangeQuantity("11", -1)
	d.ChangeQuantity("11", -1)
	assert.Equal(t, 0, d.Quantity("11"))

	d.ChangeQuantity("unknown", 1)
	assert.Equal(t, 0, d.Quantity("unknown"))
}

func TestTotals(t *testing.T) {
	d := NewDraft(50000, testMenu, nil)

	require.NoError(t, d.ToggleSeat("C4"))
	require.NoError(t, d.ToggleSeat("C5"))
	require.NoError(t, d.ToggleSeat("C6"))
	d.ChangeQuantity("11", 1)
	d.ChangeQuantity("12", 2)

	assert.Equal(t, int64(150000), d.TicketTotal())
	assert.Equal(t, int64(61000), d.MenuTotal())
	assert.Equal(t, int64(211000), d.GrandTotal())
}

func TestValidate(t *testing.T) {
	d := NewDraft(50000, testMenu, nil)
	assert.ErrorIs(t, d.Validate(1000000), ErrNoSeats)

	require.NoError(t, d.ToggleSeat("A1"))
	assert.ErrorIs(t, d.Validate(49999), ErrInsufficientFunds)
	assert.NoError(t, d.Validate(50000))
}

func TestSetMenu_ReseedsQuantitiesKeepsSeats(t *testing.T) {
	d := NewDraft(50000, testMenu, nil)
	require.NoError(t, d.ToggleSeat("A1"))
	d.ChangeQuantity("11", 3)

	d.SetMenu([]model.MenuItem{{Id: "21", Name: "Roti Bakar", Price: 15000, Category: model.CategoryFood}})

	assert.Equal(t, []string{"A1"}, d.SelectedSeats())
	assert.Equal(t, 0, d.Quantity("11"))
	assert.Equal(t, 0, d.Quantity("21"))
	assert.Equal(t, int64(50000), d.GrandTotal())
}

func TestRequestID_StableAcrossSubmits(t *testing.T) {
	d := NewDraft(50000, testMenu, nil)
	require.NotEmpty(t, d.RequestID())
	assert.Equal(t, d.RequestID(), d.RequestID())

	user := model.User{Id: "7", Name: "dina", Balance: 500000}
	first := d.Request(user, "2")
	second := d.Request(user, "2")
	assert.Equal(t, first.RequestID, second.RequestID)

	other := NewDraft(50000, testMenu, nil)
	assert.NotEqual(t, d.RequestID(), other.RequestID())
}

func TestRequest_BuildsPayload(t *testing.T) {
	d := NewDraft(50000, testMenu, nil)
	d.CafeId = "3"
	d.Date = "2026-09-01"
	d.Time = "19:30"
	require.NoError(t, d.ToggleSeat("B2"))
	require.NoError(t, d.ToggleSeat("A1"))
	d.ChangeQuantity("12", 2)

	got := d.Request(model.User{Id: "7"}, "2")
	want := service.CreateBookingInput{
		UserId:    "7",
		FilmId:    "2",
		CafeId:    "3",
		Date:      "2026-09-01",
		Time:      "19:30",
		Seats:     []string{"A1", "B2"},
		Menu:      map[string]int{"12": 2},
		Total:     136000,
		RequestID: d.RequestID(),
	}
	assert.Equal(t, want, got)
}
