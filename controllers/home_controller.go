package controllers

import (
	"net/http"

	"movie-booking/services"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	catalog *services.CatalogService
}

func NewHomeController(catalog *services.CatalogService) *HomeController {
	return &HomeController{catalog: catalog}
}

// Home renders the movie list page (GET /).
func (hc *HomeController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"movies": hc.catalog.ListMovies(),
	})
}
