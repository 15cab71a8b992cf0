package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RestaurantRoutes is implemented by handlers.RestaurantHandler.
type RestaurantRoutes interface {
	GetOpenRestaurants(w http.ResponseWriter, r *http.Request)
	ListRestaurants(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	restaurantHandler RestaurantRoutes
	router            *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	restaurantHandler RestaurantRoutes,
	router *mux.Router) *Router {
	return &Router{
		restaurantHandler: restaurantHandler,
		router:            router,
	}
}

func (r *Router) RegisterRoutes() {
	// optional ?at=YYYY-MM-DD hh:mm:ss&verbose={bool}
	r.router.HandleFunc("/v1/restaurants/open", r.restaurantHandler.GetOpenRestaurants).Methods("GET")
	r.router.HandleFunc("/v1/restaurants", r.restaurantHandler.ListRestaurants).Methods("GET")
	r.router.HandleFunc("/v1/restaurants/{name}/schedule", r.restaurantHandler.GetSchedule).Methods("GET")

	r.router.HandleFunc("/ping", r.restaurantHandler.Ping).Methods("GET")
}
