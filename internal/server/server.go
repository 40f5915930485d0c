// Package server - HTTP-заглушка, чтобы бесплатный хостинг не усыплял процесс.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func New(addr string) *http.Server {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &http.Server{Addr: addr, Handler: r}
}
