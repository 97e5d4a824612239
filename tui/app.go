package tui

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bioskopi-cli/config"
	"bioskopi-cli/model"
	"bioskopi-cli/service"
)

type appState int

const (
	stateLogin appState = iota
	stateRegister
	stateLoadingFilms
	stateFilmList
	stateLoadingFilmDetail
	stateFilmDetail
	stateLoadingCafes
	stateCafeList
	stateLoadingCafeDetail
	stateCafeDetail
	stateLoadingForm
	stateBookingForm
	stateSubmitting
	stateBookingDone
	stateLoadingBookings
	stateBookingList
	stateBookingDetail
	stateCancelling
	stateProfile
	stateError
)

type appModel struct {
	client  *service.Client
	cfg     config.Config
	session session

	state     appState
	lastState appState
	err       error

	width  int
	height int

	films    []model.Film
	cafes    []model.Cafe
	bookings []model.Booking

	film       model.Film
	cafe       model.Cafe
	cafeMenu   []model.MenuItem
	bookingSel model.Booking

	filmList    list.Model
	cafeList    list.Model
	bookingList list.Model

	form *formModel
	auth authModel

	spinner spinner.Model
}

// New builds the app model from resolved startup configuration. When
// authentication is required and no session is stored, the first screen
// is the login form; otherwise the film list loads immediately.
func New(cfg config.Config) tea.Model {
	client := service.NewClient(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.BaseURL)
	m := appModel{
		client:  client,
		cfg:     cfg,
		session: loadSession(),
	}

	m.filmList = newList("Now Showing")
	m.cafeList = newList("Partner Cafés")
	m.bookingList = newList("My Bookings")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	if cfg.RequireAuth && !m.session.loggedIn {
		m.state = stateLogin
		m.auth = newAuth(false)
	} else {
		m.state = stateLoadingFilms
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.state == stateLogin {
		return nil
	}
	return tea.Batch(m.fetchFilmsCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == stateLogin || m.state == stateRegister {
			return m.handleAuthKey(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.state = stateError
		return m, nil

	case filmsMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.films = msg.films
		m.filmList.SetItems(buildFilmItems(msg.films))
		m.state = stateFilmList
		return m, nil

	case filmMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.film = msg.film
		m.state = stateFilmDetail
		return m, nil

	case cafesMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.cafes = msg.cafes
		m.cafeList.SetItems(buildCafeItems(msg.cafes))
		m.state = stateCafeList
		return m, nil

	case cafeDetailMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.cafe = msg.cafe
		m.cafeMenu = msg.menu
		m.state = stateCafeDetail
		return m, nil

	case formDataMsg:
		if msg.err != nil {
			return m, errWithReturnCmd(msg.err, stateFilmDetail)
		}
		m.film = msg.film
		m.form = newForm(msg.film, msg.cafes, m.cfg.SeatPrice)
		m.state = stateBookingForm
		if cafe := m.form.selectedCafe(); cafe.Id != "" {
			return m, m.fetchMenuCmd(cafe.Id)
		}
		return m, nil

	case menuMsg:
		// A response for a café the user has already switched away from
		// (or a form that no longer exists) must not touch state.
		if m.form == nil || msg.cafeID != m.form.draft.CafeId {
			return m, nil
		}
		if msg.err != nil {
			m.form.menuLoading = false
			m.form.notice = "could not load the menu for this café"
			return m, nil
		}
		m.form.setMenu(msg.items)
		return m, nil

	case bookingsMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.bookings = msg.bookings
		m.bookingList.SetItems(buildBookingItems(msg.bookings))
		m.state = stateBookingList
		return m, nil

	case submitMsg:
		if msg.err != nil {
			m.state = stateBookingForm
			if m.form != nil {
				m.form.notice = submitFailureNotice(msg.err)
			}
			return m, nil
		}
		m.state = stateBookingDone
		return m, nil

	case cancelMsg:
		if msg.err != nil {
			return m, errWithReturnCmd(msg.err, stateBookingDetail)
		}
		m.state = stateLoadingBookings
		return m, tea.Batch(m.fetchBookingsCmd(m.session.user.Id), m.spinner.Tick)

	case authMsg:
		return m.handleAuthResult(msg)
	}

	var cmd tea.Cmd
	switch m.state {
	case stateFilmList:
		m.filmList, cmd = m.filmList.Update(msg)
	case stateCafeList:
		m.cafeList, cmd = m.cafeList.Update(msg)
	case stateBookingList:
		m.bookingList, cmd = m.bookingList.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.state == stateRegister {
			m.state = stateLogin
			m.auth = newAuth(false)
			return m, nil
		}
		// Login is only escapable when auth is not required.
		if !m.cfg.RequireAuth {
			if len(m.films) == 0 {
				m.state = stateLoadingFilms
				return m, tea.Batch(m.fetchFilmsCmd(), m.spinner.Tick)
			}
			m.state = stateFilmList
			return m, nil
		}
		return m, nil
	case "ctrl+r":
		if m.state == stateLogin {
			m.state = stateRegister
			m.auth = newAuth(true)
			return m, nil
		}
	}

	submitted, cmd := m.auth.handleKey(msg)
	if submitted {
		if m.state == stateRegister {
			return m, m.registerCmd(m.auth.username(), m.auth.password())
		}
		return m, m.loginCmd(m.auth.username(), m.auth.password())
	}
	return m, cmd
}

func (m appModel) handleAuthResult(msg authMsg) (tea.Model, tea.Cmd) {
	m.auth.busy = false
	if msg.err != nil {
		m.auth.notice = authFailureNotice(msg.err)
		return m, nil
	}
	if msg.registered && msg.user.Id == "" {
		// Backend confirmed the account but did not log it in.
		m.state = stateLogin
		m.auth = newAuth(false)
		m.auth.notice = "account created, please sign in"
		return m, nil
	}
	if err := m.session.login(msg.user); err != nil {
		return m, errCmd(err)
	}
	m.state = stateLoadingFilms
	return m, tea.Batch(m.fetchFilmsCmd(), m.spinner.Tick)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		if m.state != stateBookingForm {
			return m, tea.Quit, true
		}
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		return m.goBack()
	}

	if m.state == stateBookingForm && m.form != nil {
		action, cmd := m.form.handleKey(msg)
		switch action {
		case formActionMenuReload:
			return m, m.fetchMenuCmd(m.form.draft.CafeId), true
		case formActionSubmit:
			return m.submitBooking()
		}
		return m, cmd, true
	}

	switch msg.String() {
	case "c":
		if m.state == stateFilmList {
			m.state = stateLoadingCafes
			return m, tea.Batch(m.fetchCafesCmd(), m.spinner.Tick), true
		}
	case "b":
		switch m.state {
		case stateFilmList:
			return m.openBookings()
		case stateFilmDetail:
			return m.openBookingForm()
		}
	case "p":
		if m.state == stateFilmList {
			m.state = stateProfile
			return m, nil, true
		}
	case "l":
		if m.state == stateProfile {
			return m.logout()
		}
	case "x":
		if m.state == stateBookingDetail && m.bookingSel.Status == model.BookingPending {
			m.state = stateCancelling
			return m, tea.Batch(m.cancelBookingCmd(m.bookingSel.Id), m.spinner.Tick), true
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateFilmList:
			item, ok := m.filmList.SelectedItem().(filmItem)
			if !ok {
				return m, nil, true
			}
			m.state = stateLoadingFilmDetail
			return m, tea.Batch(m.fetchFilmCmd(item.film.Id), m.spinner.Tick), true
		case stateFilmDetail:
			return m.openBookingForm()
		case stateCafeList:
			item, ok := m.cafeList.SelectedItem().(cafeItem)
			if !ok {
				return m, nil, true
			}
			m.state = stateLoadingCafeDetail
			return m, tea.Batch(m.fetchCafeDetailCmd(item.cafe.Id), m.spinner.Tick), true
		case stateBookingList:
			item, ok := m.bookingList.SelectedItem().(bookingItem)
			if !ok {
				return m, nil, true
			}
			m.bookingSel = item.booking
			m.state = stateBookingDetail
			return m, nil, true
		case stateBookingDone:
			m.form = nil
			return m.openBookings()
		}
	}
	return m, nil, false
}

func (m appModel) openBookingForm() (appModel, tea.Cmd, bool) {
	if m.session.user.Id == "" {
		return m, errWithReturnCmd(errors.New("sign in to book tickets"), m.state), true
	}
	m.state = stateLoadingForm
	return m, tea.Batch(m.fetchFormDataCmd(m.film.Id), m.spinner.Tick), true
}

func (m appModel) openBookings() (appModel, tea.Cmd, bool) {
	if m.session.user.Id == "" {
		return m, errWithReturnCmd(errors.New("sign in to view your bookings"), m.state), true
	}
	m.state = stateLoadingBookings
	return m, tea.Batch(m.fetchBookingsCmd(m.session.user.Id), m.spinner.Tick), true
}

func (m appModel) submitBooking() (appModel, tea.Cmd, bool) {
	if m.form == nil {
		return m, nil, true
	}
	if err := m.form.validate(m.session.user.Balance); err != nil {
		m.form.notice = err.Error()
		return m, nil, true
	}
	input := m.form.draft.Request(m.session.user, m.film.Id)
	m.state = stateSubmitting
	return m, tea.Batch(m.submitBookingCmd(input), m.spinner.Tick), true
}

func (m appModel) logout() (appModel, tea.Cmd, bool) {
	if err := m.session.logout(); err != nil {
		return m, errCmd(err), true
	}
	m.state = stateLogin
	m.auth = newAuth(false)
	return m, nil, true
}

func (m appModel) goBack() (appModel, tea.Cmd, bool) {
	switch m.state {
	case stateFilmDetail, stateCafeList, stateBookingList, stateProfile:
		m.state = stateFilmList
	case stateCafeDetail:
		m.state = stateCafeList
	case stateBookingForm:
		m.form = nil
		m.state = stateFilmDetail
	case stateBookingDone:
		m.form = nil
		m.state = stateFilmList
	case stateBookingDetail:
		m.state = stateBookingList
	case stateError:
		m.state = m.lastState
		if m.state == stateLogin {
			m.auth = newAuth(false)
		}
	default:
		return m, nil, true
	}
	return m, nil, true
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return false
		}
		// Single letters double as navigation shortcuts on the lists.
		switch string(msg.Runes) {
		case "b", "c", "p", "q":
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateFilmList:
		return &m.filmList
	case stateCafeList:
		return &m.cafeList
	case stateBookingList:
		return &m.bookingList
	default:
		return nil
	}
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateLoadingFilms, stateLoadingFilmDetail, stateLoadingCafes,
		stateLoadingCafeDetail, stateLoadingForm, stateLoadingBookings,
		stateSubmitting, stateCancelling:
		return true
	}
	return false
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.filmList.SetSize(m.width, h)
	m.cafeList.SetSize(m.width, h)
	m.bookingList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateLoadingFilms, stateLoadingFilmDetail, stateLoadingCafes, stateLoadingBookings:
		return stateFilmList
	case stateLoadingCafeDetail:
		return stateCafeList
	case stateLoadingForm:
		return stateFilmDetail
	case stateSubmitting:
		return stateBookingForm
	case stateCancelling:
		return stateBookingDetail
	case stateError:
		return stateFilmList
	default:
		return state
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5")).Padding(0, 1)
	taglineStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	statusPending = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	statusOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	statusBad     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func (m appModel) View() string {
	header := m.headerView()
	var body string

	switch {
	case m.state == stateLogin || m.state == stateRegister:
		body = m.auth.view()
	case m.isLoadingState():
		body = m.loadingView()
	case m.state == stateError:
		body = m.errorView()
	case m.state == stateFilmList:
		body = m.filmList.View()
	case m.state == stateCafeList:
		body = m.cafeList.View()
	case m.state == stateBookingList:
		body = m.bookingList.View()
	case m.state == stateFilmDetail:
		body = m.filmDetailView()
	case m.state == stateCafeDetail:
		body = m.cafeDetailView()
	case m.state == stateBookingForm:
		if m.form != nil {
			body = m.form.view(m.session.user.Balance)
		}
	case m.state == stateBookingDone:
		body = m.bookingDoneView()
	case m.state == stateBookingDetail:
		body = m.bookingDetailView()
	case m.state == stateProfile:
		body = m.profileView()
	}

	return header + "\n" + body
}

func (m appModel) headerView() string {
	title := titleStyle.Render("BIOSKOPI") + " " + taglineStyle.Render("nonton sambil ngopi")
	if m.session.user.Id != "" {
		title += "   " + hint(fmt.Sprintf("%s • %s", m.session.user.Name, formatRupiah(m.session.user.Balance)))
	}
	return title + "\n" + m.hintBar() + "\n"
}

func (m appModel) hintBar() string {
	switch m.state {
	case stateFilmList:
		return hint("enter details • c cafés • b bookings • p profile • type to filter • q quit")
	case stateFilmDetail:
		return hint("enter book tickets • esc back")
	case stateCafeList:
		return hint("enter details • esc back • type to filter")
	case stateCafeDetail:
		return hint("esc back")
	case stateBookingForm:
		return hint("tab next section • ctrl+s pay • esc discard")
	case stateBookingList:
		return hint("enter details • esc back")
	case stateBookingDetail:
		if m.bookingSel.Status == model.BookingPending {
			return hint("x cancel booking • esc back")
		}
		return hint("esc back")
	case stateBookingDone:
		return hint("enter view bookings • esc back to films")
	case stateProfile:
		return hint("l log out • esc back")
	case stateError:
		return hint("esc back • q quit")
	default:
		return ""
	}
}

func (m appModel) loadingView() string {
	label := "Loading..."
	switch m.state {
	case stateLoadingFilms:
		label = "Loading films..."
	case stateLoadingFilmDetail:
		label = "Loading film..."
	case stateLoadingCafes:
		label = "Loading cafés..."
	case stateLoadingCafeDetail:
		label = "Loading café..."
	case stateLoadingForm:
		label = "Preparing booking form..."
	case stateLoadingBookings:
		label = "Loading your bookings..."
	case stateSubmitting:
		label = "Submitting booking..."
	case stateCancelling:
		label = "Cancelling booking..."
	}
	return fmt.Sprintf("\n %s %s\n", m.spinner.View(), label)
}

func (m appModel) errorView() string {
	message := "something went wrong"
	if m.err != nil {
		message = m.err.Error()
	}
	return "\n" + statusBad.Render("Error: "+message) + "\n"
}

func (m appModel) filmDetailView() string {
	var b strings.Builder
	b.WriteString(formSectionTitle.Render(m.film.Title) + "\n")
	b.WriteString(badgeStyle.Render(fmt.Sprintf("%s • %d • %s", m.film.Genre, m.film.Year, formatDuration(m.film.Duration))) + "\n\n")
	synopsis := m.film.Synopsis
	if synopsis == "" {
		synopsis = hint("No synopsis available.")
	}
	b.WriteString(synopsis + "\n")
	return b.String()
}

func (m appModel) cafeDetailView() string {
	var b strings.Builder
	b.WriteString(formSectionTitle.Render(m.cafe.Name) + "\n")
	b.WriteString(badgeStyle.Render(m.cafe.Location) + "\n")
	if m.cafe.OpensAt != "" || m.cafe.ClosesAt != "" {
		b.WriteString(hint(fmt.Sprintf("Open %s – %s", m.cafe.OpensAt, m.cafe.ClosesAt)) + "\n")
	}
	b.WriteString("\n" + formSectionTitle.Render("Menu") + "\n")
	if len(m.cafeMenu) == 0 {
		b.WriteString(hint("No menu available.") + "\n")
		return b.String()
	}
	for _, item := range m.cafeMenu {
		category := "food"
		if item.IsDrink() {
			category = "drink"
		}
		b.WriteString(fmt.Sprintf("  %-24s %10s  %s\n", item.Name, formatRupiah(item.Price), hint(category)))
	}
	return b.String()
}

func (m appModel) bookingDoneView() string {
	var b strings.Builder
	b.WriteString(statusOK.Render("Booking confirmed!") + "\n\n")
	if m.form != nil {
		b.WriteString(fmt.Sprintf("%s\n", m.film.Title))
		b.WriteString(fmt.Sprintf("%s at %s\n", formatBookingDate(m.form.draft.Date), m.form.draft.Time))
		b.WriteString(fmt.Sprintf("Seats: %s\n", strings.Join(m.form.draft.SelectedSeats(), ", ")))
		b.WriteString(fmt.Sprintf("Paid:  %s\n", formatRupiah(m.form.draft.GrandTotal())))
	}
	return b.String()
}

func (m appModel) bookingDetailView() string {
	booking := m.bookingSel
	status := statusPending
	switch booking.Status {
	case model.BookingConfirmed:
		status = statusOK
	case model.BookingCancelled:
		status = statusBad
	}

	var b strings.Builder
	b.WriteString(formSectionTitle.Render("Booking "+booking.Id) + "\n\n")
	b.WriteString(fmt.Sprintf("Date    %s\n", formatBookingDate(booking.Date)))
	b.WriteString(fmt.Sprintf("Time    %s\n", booking.Time))
	if booking.Seats != "" {
		b.WriteString(fmt.Sprintf("Seats   %s\n", booking.Seats))
	}
	b.WriteString(fmt.Sprintf("Tickets %d\n", booking.SeatCount))
	b.WriteString(fmt.Sprintf("Total   %s\n", formatRupiah(booking.Total)))
	b.WriteString(fmt.Sprintf("Status  %s\n", status.Render(booking.Status)))
	return b.String()
}

func (m appModel) profileView() string {
	var b strings.Builder
	b.WriteString(formSectionTitle.Render("Profile") + "\n\n")
	b.WriteString(fmt.Sprintf("Name     %s\n", m.session.user.Name))
	b.WriteString(fmt.Sprintf("Balance  %s\n", formatRupiah(m.session.user.Balance)))
	b.WriteString("\n" + hint("Top up is not available yet.") + "\n")
	return b.String()
}

func submitFailureNotice(err error) string {
	if service.IsDomainError(err) {
		return err.Error()
	}
	return "booking failed, please try again"
}

func authFailureNotice(err error) string {
	if service.IsDomainError(err) {
		return err.Error()
	}
	if service.IsNetworkError(err) {
		return "failed to connect to server"
	}
	return err.Error()
}
