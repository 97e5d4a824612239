package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestCreateBooking_SendsFormFields(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/pemesanan.php" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		got = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","message":"pemesanan berhasil"}`))
	}))
	defer server.Close()

	err := testClient(server).CreateBooking(context.Background(), CreateBookingInput{
		UserId:    "7",
		FilmId:    "2",
		CafeId:    "3",
		Date:      "2026-09-01",
		Time:      "19:30",
		Seats:     []string{"A1", "A2", "B5"},
		Menu:      map[string]int{"11": 2, "12": 0},
		Total:     186000,
		RequestID: "req-123",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	want := map[string]string{
		"user_id":                "7",
		"film_id":                "2",
		"cafe_id":                "3",
		"pemesanan_tanggal":      "2026-09-01",
		"pemesanan_jam":          "19:30",
		"pemesanan_kursi":        "A1,A2,B5",
		"pemesanan_jumlah_kursi": "3",
		"pemesanan_harga_total":  "186000",
		"request_id":             "req-123",
		"menu[11]":               "2",
	}
	for key, value := range want {
		if got.Get(key) != value {
			t.Fatalf("field %s: want %q, got %q", key, value, got.Get(key))
		}
	}
	if got.Has("menu[12]") {
		t.Fatalf("zero-quantity item must be omitted, got %+v", got)
	}
}

func TestCreateBooking_RequiresSeats(t *testing.T) {
	client := NewClient(nil, "http://example.invalid")
	err := client.CreateBooking(context.Background(), CreateBookingInput{
		UserId: "7", FilmId: "2", CafeId: "3",
	})
	if err == nil {
		t.Fatal("expected error for empty seat list")
	}
}

func TestListBookingsByUser_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("user_id"); got != "7" {
			t.Fatalf("unexpected user_id: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
  {"pemesanan_id":"41","pemesanan_tanggal":"2026-09-01","pemesanan_jam":"19:30","pemesanan_kursi":"A1,A2","pemesanan_jumlah_kursi":2,"pemesanan_harga_total":100000,"pemesanan_status":"pending"}
]}`))
	}))
	defer server.Close()

	bookings, err := testClient(server).ListBookingsByUser(context.Background(), "7")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
	if bookings[0].Seats != "A1,A2" || bookings[0].Total != 100000 {
		t.Fatalf("unexpected booking: %+v", bookings[0])
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("pemesanan_id"); got != "99" {
			t.Fatalf("unexpected pemesanan_id: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer server.Close()

	_, err := testClient(server).GetBooking(context.Background(), "99")
	if err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestCancelBooking_SendsCancelAction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("action") != "cancel" || r.PostForm.Get("pemesanan_id") != "41" {
			t.Fatalf("unexpected form: %+v", r.PostForm)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success"}`))
	}))
	defer server.Close()

	if err := testClient(server).CancelBooking(context.Background(), "41"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
