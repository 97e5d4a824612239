package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"bioskopi-cli/model"
	"bioskopi-cli/service"
)

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

type filmsMsg struct {
	films []model.Film
	err   error
}

type filmMsg struct {
	film model.Film
	err  error
}

type cafesMsg struct {
	cafes []model.Cafe
	err   error
}

type cafeDetailMsg struct {
	cafe model.Cafe
	menu []model.MenuItem
	err  error
}

type formDataMsg struct {
	film  model.Film
	cafes []model.Cafe
	err   error
}

type menuMsg struct {
	cafeID string
	items  []model.MenuItem
	err    error
}

type bookingsMsg struct {
	bookings []model.Booking
	err      error
}

type submitMsg struct {
	err error
}

type cancelMsg struct {
	bookingID string
	err       error
}

type authMsg struct {
	user       model.User
	registered bool
	err        error
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func errWithReturnCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err, returnState: returnState, returnStateSet: true}
	}
}

func (m appModel) fetchFilmsCmd() tea.Cmd {
	return func() tea.Msg {
		films, err := m.client.ListFilms(context.Background())
		return filmsMsg{films: films, err: err}
	}
}

func (m appModel) fetchFilmCmd(filmID string) tea.Cmd {
	return func() tea.Msg {
		film, err := m.client.GetFilm(context.Background(), filmID)
		return filmMsg{film: film, err: err}
	}
}

func (m appModel) fetchCafesCmd() tea.Cmd {
	return func() tea.Msg {
		cafes, err := m.client.ListCafes(context.Background())
		return cafesMsg{cafes: cafes, err: err}
	}
}

func (m appModel) fetchCafeDetailCmd(cafeID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		cafe, err := m.client.GetCafe(ctx, cafeID)
		if err != nil {
			return cafeDetailMsg{err: err}
		}
		menu, err := m.client.ListMenuByCafe(ctx, cafeID)
		if err != nil {
			return cafeDetailMsg{err: err}
		}
		return cafeDetailMsg{cafe: cafe, menu: menu}
	}
}

// fetchFormDataCmd loads everything the booking form needs up front: the
// film being booked and the café choices. The menu follows once a café is
// selected.
func (m appModel) fetchFormDataCmd(filmID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		film, err := m.client.GetFilm(ctx, filmID)
		if err != nil {
			return formDataMsg{err: err}
		}
		cafes, err := m.client.ListCafes(ctx)
		if err != nil {
			return formDataMsg{err: err}
		}
		return formDataMsg{film: film, cafes: cafes}
	}
}

func (m appModel) fetchMenuCmd(cafeID string) tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListMenuByCafe(context.Background(), cafeID)
		return menuMsg{cafeID: cafeID, items: items, err: err}
	}
}

func (m appModel) fetchBookingsCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		bookings, err := m.client.ListBookingsByUser(context.Background(), userID)
		return bookingsMsg{bookings: bookings, err: err}
	}
}

func (m appModel) submitBookingCmd(input service.CreateBookingInput) tea.Cmd {
	return func() tea.Msg {
		err := m.client.CreateBooking(context.Background(), input)
		return submitMsg{err: err}
	}
}

func (m appModel) cancelBookingCmd(bookingID string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.CancelBooking(context.Background(), bookingID)
		return cancelMsg{bookingID: bookingID, err: err}
	}
}

func (m appModel) loginCmd(username string, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.client.Login(context.Background(), username, password)
		return authMsg{user: user, err: err}
	}
}

func (m appModel) registerCmd(username string, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.client.Register(context.Background(), username, password)
		return authMsg{user: user, registered: true, err: err}
	}
}
