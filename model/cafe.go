package model

type Cafe struct {
	Id       string `json:"cafe_id"`
	Name     string `json:"cafe_nama"`
	Location string `json:"cafe_lokasi"`
	OpensAt  string `json:"cafe_jam_buka"`
	ClosesAt string `json:"cafe_jam_tutup"`
}
