package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bioskopi-cli/booking"
	"bioskopi-cli/model"
)

// The backend exposes no per-showing seat map yet; until it does, this
// fixed set stands in for seats already reserved by other customers.
var defaultBookedSeats = []string{"D5", "D6", "E6", "G1", "A7", "A8"}

type formFocus int

const (
	focusSeats formFocus = iota
	focusCafe
	focusDate
	focusTime
	focusMenu
	focusSubmit
)

type formAction int

const (
	formActionNone formAction = iota
	formActionMenuReload
	formActionSubmit
)

// formModel is the booking-form screen state: the draft being assembled
// plus cursor/focus bookkeeping. It is created fresh per booking flow and
// discarded on submit or when the user navigates away.
type formModel struct {
	film  model.Film
	cafes []model.Cafe
	draft *booking.Draft

	cafeIdx     int
	menuLoading bool
	focus       formFocus

	cursorRow int // 0-based grid row
	cursorCol int // 1-based grid column
	menuIdx   int

	dateInput textinput.Model
	timeInput textinput.Model

	showSeatLabels bool
	notice         string
}

func newForm(film model.Film, cafes []model.Cafe, seatPrice int64) *formModel {
	draft := booking.NewDraft(seatPrice, nil, defaultBookedSeats)
	if len(cafes) > 0 {
		draft.CafeId = cafes[0].Id
	}

	dateInput := textinput.New()
	dateInput.Placeholder = "YYYY-MM-DD"
	dateInput.CharLimit = 10
	dateInput.Prompt = ""

	timeInput := textinput.New()
	timeInput.Placeholder = "HH:MM"
	timeInput.CharLimit = 5
	timeInput.Prompt = ""

	return &formModel{
		film:        film,
		cafes:       cafes,
		draft:       draft,
		menuLoading: len(cafes) > 0,
		cursorRow:   0,
		cursorCol:   1,
		dateInput:   dateInput,
		timeInput:   timeInput,
	}
}

func (f *formModel) selectedCafe() model.Cafe {
	if f.cafeIdx < 0 || f.cafeIdx >= len(f.cafes) {
		return model.Cafe{}
	}
	return f.cafes[f.cafeIdx]
}

func (f *formModel) setMenu(items []model.MenuItem) {
	f.draft.SetMenu(items)
	f.menuLoading = false
	if f.menuIdx >= len(items) {
		f.menuIdx = 0
	}
}

func (f *formModel) handleKey(msg tea.KeyMsg) (formAction, tea.Cmd) {
	f.notice = ""

	switch msg.String() {
	case "tab":
		f.setFocus(f.nextFocus(1))
		return formActionNone, nil
	case "shift+tab":
		f.setFocus(f.nextFocus(-1))
		return formActionNone, nil
	case "ctrl+s":
		return formActionSubmit, nil
	}

	switch f.focus {
	case focusSeats:
		return f.handleSeatKey(msg), nil
	case focusCafe:
		return f.handleCafeKey(msg), nil
	case focusDate:
		var cmd tea.Cmd
		f.dateInput, cmd = f.dateInput.Update(msg)
		f.draft.Date = strings.TrimSpace(f.dateInput.Value())
		return formActionNone, cmd
	case focusTime:
		var cmd tea.Cmd
		f.timeInput, cmd = f.timeInput.Update(msg)
		f.draft.Time = strings.TrimSpace(f.timeInput.Value())
		return formActionNone, cmd
	case focusMenu:
		f.handleMenuKey(msg)
		return formActionNone, nil
	case focusSubmit:
		if msg.Type == tea.KeyEnter {
			return formActionSubmit, nil
		}
	}
	return formActionNone, nil
}

func (f *formModel) handleSeatKey(msg tea.KeyMsg) formAction {
	switch msg.String() {
	case "up", "k":
		if f.cursorRow > 0 {
			f.cursorRow--
		}
	case "down", "j":
		if f.cursorRow < booking.GridRows-1 {
			f.cursorRow++
		}
	case "left", "h":
		if f.cursorCol > 1 {
			f.cursorCol--
		}
	case "right", "l":
		if f.cursorCol < booking.GridCols {
			f.cursorCol++
		}
	case "n":
		f.showSeatLabels = !f.showSeatLabels
	case " ", "enter", "x":
		seatID := booking.SeatID(f.cursorRow, f.cursorCol)
		if err := f.draft.ToggleSeat(seatID); err != nil {
			f.notice = err.Error()
		}
	}
	return formActionNone
}

func (f *formModel) handleCafeKey(msg tea.KeyMsg) formAction {
	if len(f.cafes) == 0 {
		return formActionNone
	}
	prev := f.cafeIdx
	switch msg.String() {
	case "left", "h", "up", "k":
		f.cafeIdx--
		if f.cafeIdx < 0 {
			f.cafeIdx = len(f.cafes) - 1
		}
	case "right", "l", "down", "j", "enter", " ":
		f.cafeIdx = (f.cafeIdx + 1) % len(f.cafes)
	default:
		return formActionNone
	}
	if f.cafeIdx == prev {
		return formActionNone
	}
	f.draft.CafeId = f.cafes[f.cafeIdx].Id
	f.draft.SetMenu(nil)
	f.menuLoading = true
	f.menuIdx = 0
	return formActionMenuReload
}

func (f *formModel) handleMenuKey(msg tea.KeyMsg) {
	menu := f.draft.Menu()
	if len(menu) == 0 {
		return
	}
	switch msg.String() {
	case "up", "k":
		if f.menuIdx > 0 {
			f.menuIdx--
		}
	case "down", "j":
		if f.menuIdx < len(menu)-1 {
			f.menuIdx++
		}
	case "+", "right", "l", "enter", " ":
		f.draft.ChangeQuantity(menu[f.menuIdx].Id, 1)
	case "-", "left", "h":
		f.draft.ChangeQuantity(menu[f.menuIdx].Id, -1)
	}
}

func (f *formModel) nextFocus(direction int) formFocus {
	order := []formFocus{focusSeats, focusCafe, focusDate, focusTime, focusMenu, focusSubmit}
	for i, focus := range order {
		if focus == f.focus {
			return order[(i+direction+len(order))%len(order)]
		}
	}
	return focusSeats
}

func (f *formModel) setFocus(focus formFocus) {
	f.focus = focus
	if focus == focusDate {
		f.dateInput.Focus()
	} else {
		f.dateInput.Blur()
	}
	if focus == focusTime {
		f.timeInput.Focus()
	} else {
		f.timeInput.Blur()
	}
}

// validate runs every client-side precondition. It must pass before the
// submit command is issued.
func (f *formModel) validate(balance int64) error {
	if f.draft.CafeId == "" {
		return fmt.Errorf("select a café first")
	}
	if !validDateInput(f.draft.Date) {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	if !validTimeInput(f.draft.Time) {
		return fmt.Errorf("time must be HH:MM")
	}
	return f.draft.Validate(balance)
}

var (
	formSectionTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	formFocusMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	seatAvailable    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	seatSelected     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	seatBooked       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatCursor       = lipgloss.NewStyle().Background(lipgloss.Color("5")).Foreground(lipgloss.Color("0"))
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func (f *formModel) view(balance int64) string {
	var b strings.Builder

	b.WriteString(f.sectionHeader("Seats", focusSeats))
	b.WriteString("\n")
	b.WriteString(f.renderSeatGrid())
	b.WriteString("\n")

	b.WriteString(f.sectionHeader("Café", focusCafe))
	b.WriteString("\n")
	b.WriteString(f.renderCafePicker())
	b.WriteString("\n\n")

	b.WriteString(f.sectionHeader("Schedule", focusDate))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Date %s   Time %s\n\n", f.renderInput(f.dateInput, focusDate), f.renderInput(f.timeInput, focusTime)))

	b.WriteString(f.sectionHeader("Food & Drinks", focusMenu))
	b.WriteString("\n")
	b.WriteString(f.renderMenu())
	b.WriteString("\n")

	b.WriteString(f.renderSummary(balance))

	if f.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(f.notice) + "\n")
	}
	return b.String()
}

func (f *formModel) sectionHeader(title string, focus formFocus) string {
	marker := "  "
	if f.focusGroup() == focus {
		marker = formFocusMark.Render("> ")
	}
	return marker + formSectionTitle.Render(title)
}

// focusGroup maps the date/time pair onto one visual section.
func (f *formModel) focusGroup() formFocus {
	if f.focus == focusTime {
		return focusDate
	}
	return f.focus
}

func (f *formModel) renderSeatGrid() string {
	var b strings.Builder

	gridWidth := booking.GridCols*3 + 2
	screen := "S C R E E N"
	pad := (gridWidth - len(screen)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString("   " + strings.Repeat(" ", pad) + hint(screen) + "\n\n")

	for row := 0; row < booking.GridRows; row++ {
		b.WriteString(booking.RowLetter(row) + "  ")
		for col := 1; col <= booking.GridCols; col++ {
			seatID := booking.SeatID(row, col)
			token := "[]"
			style := seatAvailable
			switch {
			case f.draft.IsBooked(seatID):
				token = "XX"
				style = seatBooked
			case f.draft.IsSelected(seatID):
				token = "##"
				style = seatSelected
			}
			if f.showSeatLabels {
				token = seatID
			}
			if f.focus == focusSeats && row == f.cursorRow && col == f.cursorCol {
				style = seatCursor
			}
			b.WriteString(style.Render(token))
			if col < booking.GridCols {
				b.WriteString(" ")
			}
			// Aisle between columns 4 and 5.
			if col == booking.GridCols/2 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + hint("Legend: [] available • ## selected • XX taken • n toggle labels") + "\n")
	selected := f.draft.SelectedSeats()
	label := "none"
	if len(selected) > 0 {
		label = strings.Join(selected, ", ")
	}
	b.WriteString(fmt.Sprintf("Selected (%d/%d): %s\n", len(selected), booking.MaxSeats, label))
	return b.String()
}

func (f *formModel) renderCafePicker() string {
	cafe := f.selectedCafe()
	if cafe.Id == "" {
		return hint("No cafés available.")
	}
	label := cafe.Name
	if cafe.Location != "" {
		label += " • " + cafe.Location
	}
	return fmt.Sprintf("◀ %s ▶  (%d/%d)", label, f.cafeIdx+1, len(f.cafes))
}

func (f *formModel) renderInput(input textinput.Model, focus formFocus) string {
	view := input.View()
	if f.focus == focus {
		return "[" + view + "]"
	}
	value := input.Value()
	if value == "" {
		value = input.Placeholder
	}
	return "[" + value + "]"
}

func (f *formModel) renderMenu() string {
	if f.menuLoading {
		return hint("Loading menu...") + "\n"
	}
	menu := f.draft.Menu()
	if len(menu) == 0 {
		return hint("No menu available at this café.") + "\n"
	}

	var b strings.Builder
	for i, item := range menu {
		cursor := "  "
		if f.focus == focusMenu && i == f.menuIdx {
			cursor = formFocusMark.Render("> ")
		}
		qty := f.draft.Quantity(item.Id)
		qtyLabel := fmt.Sprintf("[-] %d [+]", qty)
		if qty == 0 {
			qtyLabel = hint(qtyLabel)
		}
		b.WriteString(fmt.Sprintf("%s%-24s %10s  %s\n", cursor, item.Name, formatRupiah(item.Price), qtyLabel))
	}
	return b.String()
}

func (f *formModel) renderSummary(balance int64) string {
	submitLabel := fmt.Sprintf("  [ PAY %s ]", formatRupiah(f.draft.GrandTotal()))
	if f.focus == focusSubmit {
		submitLabel = formFocusMark.Render("> ") + lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("[ PAY %s ]", formatRupiah(f.draft.GrandTotal())))
	}

	rows := []string{
		formSectionTitle.Render("  Summary"),
		fmt.Sprintf("  Tickets (%d × %s)  %s", f.draft.SeatCount(), formatRupiah(f.draft.SeatPrice()), formatRupiah(f.draft.TicketTotal())),
		fmt.Sprintf("  Menu               %s", formatRupiah(f.draft.MenuTotal())),
		fmt.Sprintf("  Total              %s", formatRupiah(f.draft.GrandTotal())),
		fmt.Sprintf("  Balance            %s", formatRupiah(balance)),
		"",
		submitLabel,
	}
	return strings.Join(rows, "\n") + "\n"
}
