package model

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	Id        string `json:"pemesanan_id"`
	UserId    string `json:"user_id"`
	FilmId    string `json:"film_id"`
	CafeId    string `json:"cafe_id"`
	Date      string `json:"pemesanan_tanggal"`
	Time      string `json:"pemesanan_jam"`
	Seats     string `json:"pemesanan_kursi"`
	SeatCount int    `json:"pemesanan_jumlah_kursi"`
	Total     int64  `json:"pemesanan_harga_total"`
	Status    string `json:"pemesanan_status"`
}
