package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func TestResourceFinderHttpServer_Wiring(t *testing.T) {
	// Setup
	muxRouter := mux.NewRouter()
	appRouter := NewRouter(&MockResourceHandler{}, muxRouter)
	server := NewResourceFinderHttpServer(appRouter, muxRouter, ":9090")
	appRouter.RegisterRoutes()

	srv := server.httpServer()

	// Assert the configured address is applied, not a hard-coded one.
	if srv.Addr != ":9090" {
		t.Errorf("Expected address ':9090', got '%s'", srv.Addr)
	}

	// Assert requests flow through the registered routes.
	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if rr.Body.String() != `{"status": "pong"}` {
		t.Errorf("Unexpected ping response: %s", rr.Body.String())
	}
}
