package domain

type User struct {
	ID       int64
	GoogleID string
	Email    string
	Name     string
}
