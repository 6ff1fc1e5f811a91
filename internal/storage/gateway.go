// ABOUTME: Storage gateway mediating all access to the persisted store.
// ABOUTME: Holds the three records (notes, current user, liked ids) as JSON.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harper/neonotes/internal/kv"
	"github.com/harper/neonotes/internal/logging"
	"github.com/harper/neonotes/internal/models"
)

const (
	NotesKey = "neonotes_data"
	UserKey  = "neonotes_user"
	LikedKey = "neonotes_liked_ids"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoteNotFound       = errors.New("note not found")
)

// Gateway is the only component that reads or writes the persisted store.
// It does not own the store; callers close it.
type Gateway struct {
	store  kv.Store
	logger *log.Logger
}

func New(store kv.Store, logger *log.Logger) *Gateway {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Gateway{store: store, logger: logger.WithPrefix("storage")}
}

// getter reads a raw record from a store or from inside a transaction.
type getter func(key string) ([]byte, error)

func (g *Gateway) storeGetter(ctx context.Context) getter {
	return func(key string) ([]byte, error) {
		return g.store.Get(ctx, key)
	}
}

// Initialize seeds the note collection and liked-id set when absent. It never
// touches the current-user record and is safe to call repeatedly.
func (g *Gateway) Initialize(ctx context.Context) error {
	return g.store.Update(ctx, func(tx kv.Txn) error {
		if _, err := tx.Get(NotesKey); errors.Is(err, kv.ErrKeyNotFound) {
			if err := putJSON(tx, NotesKey, models.SampleNotes()); err != nil {
				return err
			}
			g.logger.Info("seeded sample notes")
		} else if err != nil {
			return fmt.Errorf("read notes: %w", err)
		}

		if _, err := tx.Get(LikedKey); errors.Is(err, kv.ErrKeyNotFound) {
			if err := putJSON(tx, LikedKey, []string{}); err != nil {
				return err
			}
		} else if err != nil {
			return fmt.Errorf("read liked ids: %w", err)
		}
		return nil
	}, NotesKey, LikedKey)
}

// GetNotes returns the stored collection, or the sample set when the record is
// absent or unreadable.
func (g *Gateway) GetNotes(ctx context.Context) ([]models.Note, error) {
	return g.readNotes(g.storeGetter(ctx))
}

// ReplaceNotes overwrites the stored collection without validation.
func (g *Gateway) ReplaceNotes(ctx context.Context, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	return g.store.Set(ctx, NotesKey, data)
}

// AddNote prepends note and returns the updated collection.
func (g *Gateway) AddNote(ctx context.Context, note models.Note) ([]models.Note, error) {
	return g.mutateNotes(ctx, func(notes []models.Note) []models.Note {
		return append([]models.Note{note}, notes...)
	})
}

// UpdateNote replaces the note with the same id. An unknown id leaves the
// collection unchanged.
func (g *Gateway) UpdateNote(ctx context.Context, note models.Note) ([]models.Note, error) {
	return g.mutateNotes(ctx, func(notes []models.Note) []models.Note {
		if i := indexOf(notes, note.ID); i >= 0 {
			notes[i] = note
		}
		return notes
	})
}

// IncrementDownload adds one to the matching note's download counter. An
// unknown id leaves the collection unchanged.
func (g *Gateway) IncrementDownload(ctx context.Context, noteID string) ([]models.Note, error) {
	return g.mutateNotes(ctx, func(notes []models.Note) []models.Note {
		if i := indexOf(notes, noteID); i >= 0 {
			notes[i].Downloads++
		}
		return notes
	})
}

func (g *Gateway) mutateNotes(ctx context.Context, fn func([]models.Note) []models.Note) ([]models.Note, error) {
	var result []models.Note
	err := g.store.Update(ctx, func(tx kv.Txn) error {
		notes, err := g.readNotes(tx.Get)
		if err != nil {
			return err
		}
		result = fn(notes)
		return putJSON(tx, NotesKey, result)
	}, NotesKey)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (g *Gateway) readNotes(get getter) ([]models.Note, error) {
	data, err := get(NotesKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return models.SampleNotes(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		g.logger.Warn("note record unreadable, using sample notes", "err", err)
		return models.SampleNotes(), nil
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func indexOf(notes []models.Note, id string) int {
	for i := range notes {
		if notes[i].ID == id {
			return i
		}
	}
	return -1
}

func putJSON(tx kv.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return tx.Set(key, data)
}
