package model

type Film struct {
	Id       string `json:"film_id"`
	Title    string `json:"film_judul"`
	Synopsis string `json:"film_sinopsis"`
	Duration int    `json:"film_durasi"`
	Genre    string `json:"film_genre"`
	Year     int    `json:"film_tahun"`
}
