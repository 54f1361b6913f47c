package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"runtime/debug"

	app "github.com/etitcombe/jotter"
	"github.com/etitcombe/jotter/auth"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

type server struct {
	infoLog  *log.Logger
	errorLog *log.Logger

	router http.Handler

	entryStore app.EntryStore
	guard      *auth.Guard

	templateCache map[string]*template.Template
}

type viewModel struct {
	Title    string
	LoggedIn bool
	Flashes  []string
	Error    string
	Entries  []app.Entry
}

func newServer(infoLog, errorLog *log.Logger, es app.EntryStore, guard *auth.Guard) *server {
	srv := &server{
		infoLog:  infoLog,
		errorLog: errorLog,
	}
	srv.entryStore = es
	srv.guard = guard
	srv.parseTemplates()
	srv.registerRoutes()
	return srv
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *server) clientError(w http.ResponseWriter, status int, message string) {
	errorMessage := http.StatusText(status)
	if message != "" {
		errorMessage += ": " + message
	}
	http.Error(w, errorMessage, status)
}

func (s *server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	s.errorLog.Output(2, trace)

	errorMessage := http.StatusText(http.StatusInternalServerError)
	if s.guard.IsAuthenticated(r) {
		errorMessage += "\n" + trace
	}
	http.Error(w, errorMessage, http.StatusInternalServerError)
}

func (s *server) parseTemplates() {
	// Entry bodies are trusted owner input and render unescaped; titles go
	// through the usual escaping.
	funcs := template.FuncMap{
		"raw": func(text string) template.HTML { return template.HTML(text) },
	}
	cache := map[string]*template.Template{}
	cache["home"] = template.Must(template.New("home").Funcs(funcs).
		ParseFS(templateFS, "templates/layout.gohtml", "templates/home.gohtml"))
	cache["login"] = template.Must(template.New("login").Funcs(funcs).
		ParseFS(templateFS, "templates/layout.gohtml", "templates/login.gohtml"))
	s.templateCache = cache
}

func (s *server) render(w http.ResponseWriter, r *http.Request, name string, vm viewModel) {
	ts, ok := s.templateCache[name]
	if !ok {
		s.serverError(w, r, fmt.Errorf("template %s does not exist", name))
		return
	}

	buf := bytes.Buffer{}

	err := ts.ExecuteTemplate(&buf, "layout", vm)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	buf.WriteTo(w)
}
