package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/etitcombe/logifymw"
	"github.com/gorilla/mux"

	app "github.com/etitcombe/jotter"
)

type contextKey string

const entryConnKey contextKey = "entry-conn"

func (s *server) registerRoutes() {
	r := mux.NewRouter()
	r.Handle("/", s.withEntryConn(s.handleHome())).Methods(http.MethodGet)
	r.Handle("/add", s.withEntryConn(s.handleAdd())).Methods(http.MethodPost)
	r.Handle("/delete/{id:[0-9]+}", s.withEntryConn(s.handleDelete())).Methods(http.MethodGet)
	r.Handle("/login", s.handleLogin()).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/logout", s.handleLogout()).Methods(http.MethodGet)

	s.router = s.recoverPanicMw(logifymw.LogIt2(s.infoLog, r))
}

// withEntryConn attaches a request-scoped store connection to the request
// context. The connection is checked out lazily by the first query and
// released here no matter how the handler ends, panics included.
func (s *server) withEntryConn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn := s.entryStore.Conn()
		defer func() {
			if err := conn.Release(); err != nil {
				s.errorLog.Printf("releasing store connection: %v", err)
			}
		}()

		ctx := context.WithValue(r.Context(), entryConnKey, conn)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// entryConn returns the connection placed on the context by withEntryConn.
// Every route that touches the store is wrapped, so a miss is a
// programming error; the panic surfaces as a 500 via recoverPanicMw.
func (s *server) entryConn(r *http.Request) app.EntryConn {
	conn, ok := r.Context().Value(entryConnKey).(app.EntryConn)
	if !ok {
		panic("no store connection on request context")
	}
	return conn
}

func (s *server) recoverPanicMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				s.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
