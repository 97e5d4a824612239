package model

const (
	CategoryFood  = "food"
	CategoryDrink = "drink"
)

type MenuItem struct {
	Id       string `json:"makanan_id"`
	Name     string `json:"makanan_nama"`
	Price    int64  `json:"makanan_harga"`
	Category string `json:"makanan_kategori"`
}

// IsDrink tolerates the Indonesian category names the backend sometimes
// returns alongside the English ones.
func (m MenuItem) IsDrink() bool {
	switch m.Category {
	case CategoryDrink, "minuman":
		return true
	}
	return false
}
