package services

import "movie-booking/models"

// CatalogService exposes the fixed set of bookable movies.
type CatalogService struct {
	movies []models.Movie
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		movies: []models.Movie{
			{ID: 1, Title: "Avengers: Endgame", Price: 12},
			{ID: 2, Title: "Spider-Man: No Way Home", Price: 10},
			{ID: 3, Title: "Inception", Price: 8},
		},
	}
}

// ListMovies returns the catalog in declaration order.
func (s *CatalogService) ListMovies() []models.Movie {
	return s.movies
}
