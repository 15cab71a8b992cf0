package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockRestaurantHandler is a mock implementation of RestaurantRoutes.
type MockRestaurantHandler struct{}

func (h *MockRestaurantHandler) GetOpenRestaurants(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "open restaurants"}`))
}

func (h *MockRestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "restaurants"}`))
}

func (h *MockRestaurantHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "schedule of ` + mux.Vars(r)["name"] + `"}`))
}

func (h *MockRestaurantHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockRestaurantHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Get Open Restaurants",
			method:     "GET",
			path:       "/v1/restaurants/open",
			statusCode: http.StatusOK,
			response:   `{"message": "open restaurants"}`,
		},
		{
			name:       "List Restaurants",
			method:     "GET",
			path:       "/v1/restaurants",
			statusCode: http.StatusOK,
			response:   `{"message": "restaurants"}`,
		},
		{
			name:       "Get Schedule",
			method:     "GET",
			path:       "/v1/restaurants/Tres/schedule",
			statusCode: http.StatusOK,
			response:   `{"message": "schedule of Tres"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/v1/restaurants/open",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
