package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"peliculas-service/internal/metrics"
)

func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Post("/peliculas", a.CreatePelicula)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

// @Summary Create a movie record
// @Tags Peliculas
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /peliculas [post]
func (a *API) CreatePelicula(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		// An unreadable body falls through as empty and fails field validation.
		raw = nil
	}

	resp := a.Handle(r.Context(), Request{Body: string(raw)})

	metrics.RequestsHandled.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	io.WriteString(w, resp.Body)
}
