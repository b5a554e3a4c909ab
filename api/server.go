package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"
)

// Api exposes the trigger over HTTP and serves the client pages.
type Api struct {
	trigger func()
	static  string
}

// NewApi creates an Api. trigger is called for every POST to /trigger and
// must be safe to call from any goroutine.
func NewApi(trigger func(), static string) *Api {
	a := new(Api)
	a.trigger = trigger
	a.static = static
	return a
}

func (a *Api) handleTrigger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	a.trigger()
	w.WriteHeader(http.StatusAccepted)
}

// Handler routes the Api's endpoints.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/trigger", a.handleTrigger)
	mux.Handle("/", http.FileServer(http.Dir(a.static)))
	return mux
}

// Serve listens on addr until ctx is cancelled.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	served := make(chan struct{})
	defer close(served)
	go func() {
		select {
		case <-served:
			return
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown failed: %v", err)
		}
	}()

	log.Printf("Listening on %s...", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
