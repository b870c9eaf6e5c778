// Package web is the HTML front end: capture, replay and manage named
// profiles from a browser. It is also the serialization point for the
// device: the driver session carries no lock of its own, so one mutex
// here keeps concurrent handlers from interleaving commands.
package web

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/anekos/irmagi/driver"
	"github.com/anekos/irmagi/history"
	"github.com/anekos/irmagi/profile"
	"github.com/anekos/irmagi/signal"
)

// Device is the slice of the driver session the front end uses.
type Device interface {
	Capture() (*driver.CaptureResult, error)
	Dump() (*signal.Waveform, error)
	Play() error
	Record(w *signal.Waveform) error
	Reset(mode int) error
}

const historyPageSize = 20

// Server serves the profile pages and forwards actions to the device.
type Server struct {
	mu       sync.Mutex
	device   Device
	profiles *profile.Store
	history  *history.Store
}

// NewServer wires the front end over a device session, profile store
// and history log.
func NewServer(device Device, profiles *profile.Store, hist *history.Store) *Server {
	return &Server{device: device, profiles: profiles, history: hist}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/capture", s.handleCapture)
	mux.HandleFunc("/play", s.handlePlay)
	mux.HandleFunc("/delete", s.handleDelete)
	mux.HandleFunc("/reset", s.handleReset)
	mux.HandleFunc("/profiles/", s.handleProfile)
	return mux
}

// Start runs the HTTP server on addr.
func (s *Server) Start(addr string) error {
	log.Printf("irmagi web ui listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

type indexData struct {
	Message  string
	Profiles []string
	History  []history.Entry
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	names, err := s.profiles.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	entries, err := s.history.Recent(historyPageSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := indexData{
		Message:  r.URL.Query().Get("m"),
		Profiles: names,
		History:  entries,
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("render index: %v", err)
	}
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	name, ok := s.formName(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	res, err := s.device.Capture()
	if err != nil {
		s.mu.Unlock()
		s.redirect(w, r, err.Error())
		return
	}
	if !res.OK {
		s.mu.Unlock()
		// surface the device's raw response, not a generic message
		s.redirect(w, r, "capture failed: "+res.Response)
		return
	}
	waveform, err := s.device.Dump()
	s.mu.Unlock()
	if err != nil {
		s.redirect(w, r, err.Error())
		return
	}

	if _, err := s.profiles.Save(name, waveform); err != nil {
		s.redirect(w, r, err.Error())
		return
	}
	s.logAction("capture", name, fmt.Sprintf("%d bytes", res.Size))
	s.redirect(w, r, fmt.Sprintf("captured %d bytes as %q", res.Size, name))
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	name, ok := s.formName(w, r)
	if !ok {
		return
	}

	waveform, err := s.profiles.Load(name)
	if err != nil {
		s.redirect(w, r, err.Error())
		return
	}

	s.mu.Lock()
	err = s.device.Record(waveform)
	if err == nil {
		err = s.device.Play()
	}
	s.mu.Unlock()
	if err != nil {
		s.redirect(w, r, err.Error())
		return
	}

	s.logAction("play", name, "")
	s.redirect(w, r, fmt.Sprintf("played %q", name))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	name, ok := s.formName(w, r)
	if !ok {
		return
	}

	if err := s.profiles.Remove(name); err != nil {
		s.redirect(w, r, err.Error())
		return
	}
	s.logAction("delete", name, "")
	s.redirect(w, r, fmt.Sprintf("deleted %q", name))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	err := s.device.Reset(0)
	s.mu.Unlock()
	if err != nil {
		s.redirect(w, r, err.Error())
		return
	}

	s.logAction("reset", "", "")
	s.redirect(w, r, "device reset")
}

// handleProfile serves the raw profile document:
// GET /profiles/<name>.json
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/profiles/")
	name = strings.TrimSuffix(name, ".json")

	waveform, err := s.profiles.Load(name)
	if profile.IsNotFound(err) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, waveform)
}

func (s *Server) formName(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		s.redirect(w, r, "profile name is required")
		return "", false
	}
	return name, true
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/?m="+url.QueryEscape(message), http.StatusSeeOther)
}

func (s *Server) logAction(action, name, detail string) {
	if err := s.history.Append(action, name, detail); err != nil {
		log.Printf("append history: %v", err)
	}
}
