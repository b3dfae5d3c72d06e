package models

// Booking is a reserved set of seats for a movie under a customer name.
// The schema is migrated at startup; no handler writes rows yet.
type Booking struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	MovieTitle string `gorm:"column:movie_title;size:100;not null" json:"movie_title"`
	Seats      int    `gorm:"not null" json:"seats"`
}
