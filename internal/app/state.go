// ABOUTME: Application state holder caching notes, the signed-in user and liked ids.
// ABOUTME: Every mutation goes through the gateway and adopts its returned snapshot.

package app

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harper/neonotes/internal/logging"
	"github.com/harper/neonotes/internal/models"
	"github.com/harper/neonotes/internal/storage"
)

var (
	ErrNotSignedIn     = errors.New("sign in required")
	ErrForbidden       = errors.New("administrator access required")
	ErrFileTooLarge    = errors.New("file exceeds 2 MiB limit")
	ErrEmptyComment    = errors.New("comment must not be empty")
	ErrAmbiguousPrefix = errors.New("id prefix matches more than one note")
	ErrUnknownSort     = errors.New("unknown sort order")
	ErrInvalidPrice    = models.ErrInvalidPrice
	ErrNoteNotFound    = storage.ErrNoteNotFound
)

// Gateway is the persistence surface the state holder depends on.
type Gateway interface {
	Initialize(ctx context.Context) error
	GetNotes(ctx context.Context) ([]models.Note, error)
	ReplaceNotes(ctx context.Context, notes []models.Note) error
	AddNote(ctx context.Context, note models.Note) ([]models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) ([]models.Note, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	SignOut(ctx context.Context) error
	GetLikedIDs(ctx context.Context) ([]string, error)
	ToggleLike(ctx context.Context, noteID string) (storage.LikeResult, error)
	IncrementDownload(ctx context.Context, noteID string) ([]models.Note, error)
	AddComment(ctx context.Context, noteID string, c models.Comment) ([]models.Note, error)
}

// State is the in-memory view of the persisted records.
type State struct {
	gw     Gateway
	logger *log.Logger
	now    func() time.Time

	mu    sync.RWMutex
	notes []models.Note
	user  *models.User
	liked []string
}

func New(gw Gateway, logger *log.Logger) *State {
	if logger == nil {
		logger = logging.Discard()
	}
	return &State{
		gw:     gw,
		logger: logger.WithPrefix("app"),
		now:    time.Now,
		notes:  []models.Note{},
		liked:  []string{},
	}
}

// Load seeds the store when needed and pulls all three records.
func (s *State) Load(ctx context.Context) error {
	if err := s.gw.Initialize(ctx); err != nil {
		return err
	}
	notes, err := s.gw.GetNotes(ctx)
	if err != nil {
		return err
	}
	user, err := s.gw.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	liked, err := s.gw.GetLikedIDs(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
	s.user = user
	s.liked = liked
	s.logger.Debug("state loaded", "notes", len(notes), "liked", len(liked), "signed_in", user != nil)
	return nil
}

func (s *State) Notes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneNotes(s.notes)
}

// CurrentUser returns nil when nobody is signed in.
func (s *State) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *State) LikedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.liked)
}

func (s *State) IsLiked(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.liked, id)
}

func (s *State) AddNote(ctx context.Context, note models.Note) error {
	notes, err := s.gw.AddNote(ctx, note)
	if err != nil {
		return err
	}
	s.setNotes(notes)
	return nil
}

func (s *State) UpdateNote(ctx context.Context, note models.Note) error {
	notes, err := s.gw.UpdateNote(ctx, note)
	if err != nil {
		return err
	}
	s.setNotes(notes)
	return nil
}

// ToggleLike flips the like on id and reports whether it is now liked.
func (s *State) ToggleLike(ctx context.Context, id string) (bool, error) {
	res, err := s.gw.ToggleLike(ctx, id)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	s.notes = res.Notes
	s.liked = res.LikedIDs
	s.mu.Unlock()
	return res.Liked, nil
}

func (s *State) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.gw.Authenticate(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return user, nil
}

func (s *State) Logout(ctx context.Context) error {
	if err := s.gw.SignOut(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

// ImportNotes replaces the whole collection. Every note must satisfy the
// price and counter invariants.
func (s *State) ImportNotes(ctx context.Context, notes []models.Note) error {
	for i := range notes {
		if err := notes[i].Validate(); err != nil {
			return fmtNote(notes[i].ID, err)
		}
		if notes[i].Tags == nil {
			notes[i].Tags = []string{}
		}
		if notes[i].Comments == nil {
			notes[i].Comments = []models.Comment{}
		}
	}
	if err := s.gw.ReplaceNotes(ctx, notes); err != nil {
		return err
	}
	stored, err := s.gw.GetNotes(ctx)
	if err != nil {
		return err
	}
	s.setNotes(stored)
	s.logger.Info("imported notes", "count", len(stored))
	return nil
}

func (s *State) setNotes(notes []models.Note) {
	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
}

func (s *State) requireUser() (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, ErrNotSignedIn
	}
	return *s.user, nil
}
