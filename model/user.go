package model

type User struct {
	Id      string `json:"user_id"`
	Name    string `json:"user_name"`
	Balance int64  `json:"user_saldo"`
}
