package models

// Movie is a catalog entry. Never persisted; the catalog lives in memory.
type Movie struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Price int    `json:"price"`
}
