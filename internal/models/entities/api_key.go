package entities

type ApiKey struct {
	ApiKey string `db:"api_key"`
	UserID string `db:"user_id"`
	Status bool   `db:"status"`
}
