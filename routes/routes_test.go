package routes

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"movie-booking/config"
	"movie-booking/controllers"
	"movie-booking/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hc := controllers.NewHomeController(services.NewCatalogService())
	return SetupRouter(hc, "../templates/*.html")
}

func TestHomePageListsMovies(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	titles := []string{"Avengers: Endgame", "Spider-Man: No Way Home", "Inception"}
	for _, title := range titles {
		if n := strings.Count(body, title); n != 1 {
			t.Errorf("title %q appears %d times in body, want 1", title, n)
		}
	}
	for _, price := range []string{"12", "10", "8"} {
		if !strings.Contains(body, price) {
			t.Errorf("body missing price %q", price)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Errorf("unexpected not-found body: %s", w.Body.String())
	}
}

// Fresh environment end to end: schema ensured against a new file, then the
// home page serves the catalog.
func TestFreshStartupServesHomePage(t *testing.T) {
	db, err := config.Connect(filepath.Join(t.TempDir(), "bookings.db"))
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Inception") || !strings.Contains(body, "12") {
		t.Errorf("body missing expected catalog content: %s", body)
	}
}
