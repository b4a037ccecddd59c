package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// ResourceFinderHttpServer serves the directory API and shuts down cleanly
// on SIGINT/SIGTERM so in-flight status queries can finish.
type ResourceFinderHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	address   string
}

func NewResourceFinderHttpServer(router *Router, muxRouter *mux.Router, address string) *ResourceFinderHttpServer {
	return &ResourceFinderHttpServer{
		router:    router,
		muxRouter: muxRouter,
		address:   address,
	}
}

// httpServer builds the underlying http.Server. Split out so tests can
// check the wiring without binding a port.
func (s *ResourceFinderHttpServer) httpServer() *http.Server {
	return &http.Server{
		Addr:    s.address,
		Handler: s.muxRouter,
	}
}

// Start registers the routes, serves until a termination signal arrives,
// then drains connections for up to shutdownTimeout.
func (s *ResourceFinderHttpServer) Start() {
	s.router.RegisterRoutes()
	srv := s.httpServer()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[ResourceFinderHttpServer] Listening on %s", s.address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[ResourceFinderHttpServer] ListenAndServe: %v", err)
		}
	}()

	<-stop
	log.Println("[ResourceFinderHttpServer] Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[ResourceFinderHttpServer] Forced shutdown: %v", err)
	}

	log.Println("[ResourceFinderHttpServer] Server exited")
}
