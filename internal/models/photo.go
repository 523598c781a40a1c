package models

// Photo is an album photo as served by the upstream placeholder API.
type Photo struct {
	AlbumID      int    `json:"albumId"      db:"album_id"`
	ID           int    `json:"id"           db:"id"`
	Title        string `json:"title"        db:"title"`
	URL          string `json:"url"          db:"url"`
	ThumbnailURL string `json:"thumbnailUrl" db:"thumbnail_url"`
}
