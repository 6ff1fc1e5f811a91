// ABOUTME: Liked-id set management and the like toggle.
// ABOUTME: Keeps set membership and like counters in lock-step.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/harper/neonotes/internal/kv"
	"github.com/harper/neonotes/internal/models"
)

// LikeResult is the state after a toggle.
type LikeResult struct {
	Notes    []models.Note
	LikedIDs []string
	Liked    bool // whether the note is liked after the toggle
}

// GetLikedIDs returns an empty set when the record is absent or unreadable.
func (g *Gateway) GetLikedIDs(ctx context.Context) ([]string, error) {
	return g.readLiked(g.storeGetter(ctx))
}

// ToggleLike flips noteID's membership in the liked set and moves its like
// counter with it (+1, or -1 floored at zero). Both records are written in one
// transaction. An id that matches no stored note returns ErrNoteNotFound and
// writes nothing.
func (g *Gateway) ToggleLike(ctx context.Context, noteID string) (LikeResult, error) {
	var res LikeResult
	err := g.store.Update(ctx, func(tx kv.Txn) error {
		liked, err := g.readLiked(tx.Get)
		if err != nil {
			return err
		}
		notes, err := g.readNotes(tx.Get)
		if err != nil {
			return err
		}

		i := indexOf(notes, noteID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrNoteNotFound, noteID)
		}

		wasLiked := slices.Contains(liked, noteID)
		if wasLiked {
			liked = slices.DeleteFunc(liked, func(id string) bool { return id == noteID })
			notes[i].Likes = max(0, notes[i].Likes-1)
		} else {
			liked = append(liked, noteID)
			notes[i].Likes++
		}

		if err := putJSON(tx, LikedKey, liked); err != nil {
			return err
		}
		if err := putJSON(tx, NotesKey, notes); err != nil {
			return err
		}
		res = LikeResult{Notes: notes, LikedIDs: liked, Liked: !wasLiked}
		return nil
	}, LikedKey, NotesKey)
	if err != nil {
		return LikeResult{}, err
	}
	return res, nil
}

func (g *Gateway) readLiked(get getter) ([]string, error) {
	data, err := get(LikedKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read liked ids: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		g.logger.Warn("liked id record unreadable, using empty set", "err", err)
		return []string{}, nil
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
