package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"bioskopi-cli/config"
	"bioskopi-cli/model"
)

func setTestConfigDir(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
}

func testConfig() config.Config {
	return config.Load()
}

func newFilterModel(t *testing.T, items []list.Item) *appModel {
	setTestConfigDir(t)
	m := New(testConfig()).(appModel)
	m.state = stateFilmList
	m.filmList.SetItems(items)
	return &m
}

func filmItems() []list.Item {
	return buildFilmItems([]model.Film{
		{Id: "1", Title: "Filosofi Kopi"},
		{Id: "2", Title: "Laskar Pelangi"},
	})
}

func TestNew_StartsAtLoginWhenAuthRequired(t *testing.T) {
	setTestConfigDir(t)
	cfg := testConfig()
	cfg.RequireAuth = true

	m := New(cfg).(appModel)
	if m.state != stateLogin {
		t.Fatalf("expected login state, got %v", m.state)
	}
}

func TestNew_SkipsLoginWhenAuthOptional(t *testing.T) {
	setTestConfigDir(t)
	cfg := testConfig()
	cfg.RequireAuth = false

	m := New(cfg).(appModel)
	if m.state != stateLoadingFilms {
		t.Fatalf("expected films to load immediately, got %v", m.state)
	}
}

func TestHandleFilterInput_AppendsRunes(t *testing.T) {
	m := newFilterModel(t, filmItems())

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.filmList.FilterValue(); got != "f" {
		t.Fatalf("expected filter value %q, got %q", "f", got)
	}

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.filmList.FilterValue(); got != "fi" {
		t.Fatalf("expected filter value %q, got %q", "fi", got)
	}
}

func TestHandleFilterInput_Backspace(t *testing.T) {
	m := newFilterModel(t, filmItems())

	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatal("expected backspace to be handled")
	}
	if got := m.filmList.FilterValue(); got != "f" {
		t.Fatalf("expected filter value %q, got %q", "f", got)
	}
}

func TestHandleFilterInput_ReservedShortcutsPassThrough(t *testing.T) {
	m := newFilterModel(t, filmItems())

	for _, letter := range []string{"b", "c", "p", "q"} {
		if m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(letter)}) {
			t.Fatalf("expected %q to pass through to navigation", letter)
		}
	}
	if got := m.filmList.FilterValue(); got != "" {
		t.Fatalf("expected empty filter, got %q", got)
	}
}

func TestHandleFilterInput_IgnoredOutsideLists(t *testing.T) {
	m := newFilterModel(t, filmItems())
	m.state = stateFilmDetail

	if m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")}) {
		t.Fatal("expected filter input to be ignored outside list states")
	}
}

func TestGoBack(t *testing.T) {
	setTestConfigDir(t)
	m := New(testConfig()).(appModel)

	cases := []struct {
		from appState
		want appState
	}{
		{stateFilmDetail, stateFilmList},
		{stateCafeList, stateFilmList},
		{stateCafeDetail, stateCafeList},
		{stateBookingList, stateFilmList},
		{stateBookingDetail, stateBookingList},
		{stateProfile, stateFilmList},
	}
	for _, tc := range cases {
		m.state = tc.from
		next, _, handled := m.goBack()
		if !handled {
			t.Fatalf("goBack from %v: expected handled", tc.from)
		}
		if next.state != tc.want {
			t.Fatalf("goBack from %v: want %v, got %v", tc.from, tc.want, next.state)
		}
	}
}

func TestGoBack_DiscardsDraft(t *testing.T) {
	setTestConfigDir(t)
	m := New(testConfig()).(appModel)
	m.form = newForm(model.Film{Id: "1", Title: "Filosofi Kopi"}, nil, 50000)
	m.state = stateBookingForm

	next, _, _ := m.goBack()
	if next.state != stateFilmDetail {
		t.Fatalf("expected film detail, got %v", next.state)
	}
	if next.form != nil {
		t.Fatal("expected draft to be discarded")
	}
}

func TestRecoverStateFrom(t *testing.T) {
	cases := map[appState]appState{
		stateLoadingFilms:      stateFilmList,
		stateLoadingCafes:      stateFilmList,
		stateLoadingCafeDetail: stateCafeList,
		stateLoadingForm:       stateFilmDetail,
		stateSubmitting:        stateBookingForm,
		stateCancelling:        stateBookingDetail,
	}
	for from, want := range cases {
		if got := recoverStateFrom(from); got != want {
			t.Fatalf("recoverStateFrom(%v): want %v, got %v", from, want, got)
		}
	}
}
