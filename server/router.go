package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ResourceRoutes is the set of handlers the router wires up. Declared as an
// interface so tests can register stub handlers.
type ResourceRoutes interface {
	GetResources(w http.ResponseWriter, r *http.Request)
	GetResource(w http.ResponseWriter, r *http.Request)
	UpsertResource(w http.ResponseWriter, r *http.Request)
	DeleteResource(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	resourceHandler ResourceRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	resourceHandler ResourceRoutes,
	router *mux.Router) *Router {
	return &Router{
		resourceHandler: resourceHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects optional ?lat={latitude}&lon={longitude}&radius={km} or ?category={name}
	r.router.HandleFunc("/v1/resources", r.resourceHandler.GetResources).Methods("GET")
	r.router.HandleFunc("/v1/resources", r.resourceHandler.UpsertResource).Methods("POST")
	r.router.HandleFunc("/v1/resources/{id}", r.resourceHandler.GetResource).Methods("GET")
	r.router.HandleFunc("/v1/resources/{id}", r.resourceHandler.DeleteResource).Methods("DELETE")

	r.router.HandleFunc("/ping", r.resourceHandler.Ping).Methods("GET")
}
