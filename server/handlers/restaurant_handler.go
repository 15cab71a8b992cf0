package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"restaurant-hours/apperrors"
	"restaurant-hours/config"
	"restaurant-hours/models/restaurant"
	"restaurant-hours/schedule"
	services "restaurant-hours/service"
)

const (
	AT_QUERY_ARG      = "at"
	VERBOSE_QUERY_ARG = "verbose"
	NAME_PATH_VAR     = "name"
)

type RestaurantHandler struct {
	restaurantService *services.RestaurantService
	now               func() time.Time
	logger            *zap.Logger
}

func NewRestaurantHandler(restaurantService *services.RestaurantService, now func() time.Time, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		now:               now,
		logger:            logger.Named("RestaurantHandler"),
	}
}

// GetOpenRestaurants handles GET /v1/restaurants/open?at=YYYY-MM-DD hh:mm:ss
func (h *RestaurantHandler) GetOpenRestaurants(w http.ResponseWriter, r *http.Request) {
	when, verbose, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}
	at := when.Format(config.QUERY_TIME_LAYOUT)

	if verbose {
		records, err := h.restaurantService.ListRestaurants()
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, restaurant.VerboseOpenRestaurantsResponse{
			At:          at,
			Restaurants: toStatuses(h.restaurantService.EvaluateRestaurants(records, when)),
		})
		return
	}

	open, err := h.restaurantService.OpenRestaurantsFromCatalog(when)
	resp := restaurant.OpenRestaurantsResponse{At: at, Open: open}
	var batchErr *services.BatchError
	if errors.As(err, &batchErr) {
		for _, f := range batchErr.Failures {
			resp.Errors = append(resp.Errors, f.Err.Error())
		}
	} else if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// ListRestaurants handles GET /v1/restaurants
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	records, err := h.restaurantService.ListRestaurants()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, records)
}

// GetSchedule handles GET /v1/restaurants/{name}/schedule
func (h *RestaurantHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	resp, err := h.restaurantService.GetSchedule(mux.Vars(r)[NAME_PATH_VAR])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Ping handles GET /ping
func (h *RestaurantHandler) Ping(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *RestaurantHandler) parseArgs(vals url.Values, w http.ResponseWriter) (when time.Time, verbose bool, ok bool) {
	when = h.now()
	if v := vals.Get(AT_QUERY_ARG); v != "" {
		parsed, err := time.ParseInLocation(config.QUERY_TIME_LAYOUT, v, when.Location())
		if err != nil {
			http.Error(w, "Invalid argument "+AT_QUERY_ARG, http.StatusBadRequest)
			return
		}
		when = parsed
	}
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

func toStatuses(results []restaurant.Result) []restaurant.RestaurantStatus {
	out := make([]restaurant.RestaurantStatus, len(results))
	for i, res := range results {
		out[i] = restaurant.RestaurantStatus{Name: res.Name, IsOpen: res.Open}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
		}
	}
	return out
}

func statusFor(err error) int {
	var perr *schedule.ParseError
	switch {
	case errors.Is(err, apperrors.ErrRestaurantNotFound):
		return http.StatusNotFound
	case errors.As(err, &perr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrCatalogEmpty), errors.Is(err, apperrors.ErrSourceUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (h *RestaurantHandler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		http.Error(w, "Internal server error", status)
		return
	}
	h.logger.Warn("request rejected", zap.Int("status", status), zap.Error(err))
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *RestaurantHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", zap.Error(err))
	}
}
