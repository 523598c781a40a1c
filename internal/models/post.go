package models

// Post is a blog post as served by the upstream placeholder API.
type Post struct {
	UserID int    `json:"userId" db:"user_id"`
	ID     int    `json:"id"     db:"id"`
	Title  string `json:"title"  db:"title"`
	Body   string `json:"body"   db:"body"`
}
