// Package screen holds the client-side state of one register screen: the
// fetched records, the date filter window, the search term and the form.
package screen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDateRange = errors.New("invalid date request")
	ErrValidation       = errors.New("validation failed")
	ErrNotEditable      = errors.New("records on this screen cannot be edited")
	ErrUnknownRecord    = errors.New("record is not loaded")
)

// Entry is a record shown on a screen.
type Entry interface {
	RecordID() string
	RecordDate() string
	SearchFields() []string
}

// Backend is the remote API behind a screen.
type Backend[T Entry] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (*T, error)
	Update(ctx context.Context, id string, rec T) (*T, error)
}

// Screen is the state container of one entity screen. It is safe for
// concurrent use, though a UI normally drives it from a single goroutine.
type Screen[T Entry] struct {
	name     string
	backend  Backend[T]
	validate func(T) error
	editable bool
	now      func() time.Time

	mu      sync.RWMutex
	records []T
	from    string
	to      string
	search  string
	open    bool
	editing string
}

type Option[T Entry] func(*Screen[T])

// WithValidation runs fn on every record before it is submitted.
func WithValidation[T Entry](fn func(T) error) Option[T] {
	return func(s *Screen[T]) { s.validate = fn }
}

// WithEdit enables the edit flow.
func WithEdit[T Entry]() Option[T] {
	return func(s *Screen[T]) { s.editable = true }
}

// WithClock replaces time.Now, used for the default filter window.
func WithClock[T Entry](now func() time.Time) Option[T] {
	return func(s *Screen[T]) { s.now = now }
}

// New returns a screen whose filter window defaults to today.
func New[T Entry](name string, backend Backend[T], opts ...Option[T]) *Screen[T] {
	s := &Screen[T]{
		name:    name,
		backend: backend,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	today := s.now().UTC().Format(dateLayout)
	s.from, s.to = today, today
	return s
}

// Filter returns the current window bounds.
func (s *Screen[T]) Filter() (from, to string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.from, s.to
}

// SetFilter changes the window bounds without fetching. Call ApplyFilter to
// reload.
func (s *Screen[T]) SetFilter(from, to string) {
	s.mu.Lock()
	s.from, s.to = strings.TrimSpace(from), strings.TrimSpace(to)
	s.mu.Unlock()
}

// Load fetches the collection and applies the current window.
func (s *Screen[T]) Load(ctx context.Context) error {
	return s.ApplyFilter(ctx)
}

// ApplyFilter fetches the full collection and keeps the records dated within
// the window, bounds included. With either bound empty every record is kept.
// An inverted window is rejected before any fetch.
func (s *Screen[T]) ApplyFilter(ctx context.Context) error {
	s.mu.RLock()
	from, to := s.from, s.to
	s.mu.RUnlock()

	var lo, hi time.Time
	filtered := from != "" && to != ""
	if filtered {
		var err error
		if lo, hi, err = parseWindow(from, to); err != nil {
			log.Warnf("%s: %v (%s .. %s)", s.name, err, from, to)
			return err
		}
	}

	all, err := s.backend.List(ctx)
	if err != nil {
		log.Errorf("%s: error fetching records: %v", s.name, err)
		return err
	}

	kept := make([]T, 0, len(all))
	for _, rec := range all {
		if filtered && !inWindow(rec.RecordDate(), lo, hi) {
			continue
		}
		kept = append(kept, rec)
	}

	s.mu.Lock()
	s.records = kept
	s.mu.Unlock()
	return nil
}

// ClearFilter empties both bounds and reloads the unfiltered collection.
func (s *Screen[T]) ClearFilter(ctx context.Context) error {
	s.SetFilter("", "")
	return s.ApplyFilter(ctx)
}

// SetSearch sets the free-text search term.
func (s *Screen[T]) SetSearch(term string) {
	s.mu.Lock()
	s.search = term
	s.mu.Unlock()
}

// Records returns the filtered records, before search.
func (s *Screen[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Visible returns the filtered records matching the search term.
func (s *Screen[T]) Visible() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(s.search)
	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		if term == "" || matches(rec, term) {
			out = append(out, rec)
		}
	}
	return out
}

// OpenCreate opens an empty form.
func (s *Screen[T]) OpenCreate() {
	s.mu.Lock()
	s.open, s.editing = true, ""
	s.mu.Unlock()
}

// OpenEdit opens the form for the loaded record with the given id and
// returns that record for pre-populating the fields.
func (s *Screen[T]) OpenEdit(id string) (T, error) {
	var zero T
	if !s.editable {
		return zero, ErrNotEditable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.RecordID() == id {
			s.open, s.editing = true, id
			return rec, nil
		}
	}
	return zero, fmt.Errorf("%w: %s", ErrUnknownRecord, id)
}

// CloseForm discards the form.
func (s *Screen[T]) CloseForm() {
	s.mu.Lock()
	s.open, s.editing = false, ""
	s.mu.Unlock()
}

// FormOpen reports whether the form is open and the id being edited, empty
// when creating.
func (s *Screen[T]) FormOpen() (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open, s.editing
}

// Submit sends the form. A new record is prepended to the list, an edited
// one replaces the loaded record with the same id. On any failure the list
// and the form are left as they were.
func (s *Screen[T]) Submit(ctx context.Context, rec T) (*T, error) {
	if s.validate != nil {
		if err := s.validate(rec); err != nil {
			log.Warnf("%s: %v", s.name, err)
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	s.mu.RLock()
	editing := s.editing
	s.mu.RUnlock()

	if editing != "" {
		updated, err := s.backend.Update(ctx, editing, rec)
		if err != nil {
			log.Errorf("%s: error updating record %s: %v", s.name, editing, err)
			return nil, err
		}

		s.mu.Lock()
		for i := range s.records {
			if s.records[i].RecordID() == editing {
				s.records[i] = *updated
				break
			}
		}
		s.open, s.editing = false, ""
		s.mu.Unlock()
		return updated, nil
	}

	created, err := s.backend.Create(ctx, rec)
	if err != nil {
		log.Errorf("%s: error submitting record: %v", s.name, err)
		return nil, err
	}

	s.mu.Lock()
	s.records = append([]T{*created}, s.records...)
	s.open = false
	s.mu.Unlock()
	return created, nil
}

func matches(rec Entry, term string) bool {
	for _, f := range rec.SearchFields() {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func parseWindow(from, to string) (time.Time, time.Time, error) {
	lo, err := time.Parse(dateLayout, from)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	hi, err := time.Parse(dateLayout, to)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if lo.After(hi) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return lo, hi, nil
}

// inWindow compares calendar dates. Records carrying a full timestamp are
// reduced to their date, anything else unparseable is outside every window.
func inWindow(date string, lo, hi time.Time) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		ts, terr := time.Parse(time.RFC3339, date)
		if terr != nil {
			return false
		}
		d, _ = time.Parse(dateLayout, ts.UTC().Format(dateLayout))
	}
	return !d.Before(lo) && !d.After(hi)
}
