// ABOUTME: Comment posting against the stored note collection.
// ABOUTME: The comment is applied to the stored note, never to a cached copy.

package storage

import (
	"context"
	"fmt"

	"github.com/harper/neonotes/internal/kv"
	"github.com/harper/neonotes/internal/models"
)

// AddComment puts c at the head of the stored note's comments and returns the
// updated collection. Other fields of the note are left as stored. An unknown
// id returns ErrNoteNotFound and writes nothing.
func (g *Gateway) AddComment(ctx context.Context, noteID string, c models.Comment) ([]models.Note, error) {
	var result []models.Note
	err := g.store.Update(ctx, func(tx kv.Txn) error {
		notes, err := g.readNotes(tx.Get)
		if err != nil {
			return err
		}
		i := indexOf(notes, noteID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrNoteNotFound, noteID)
		}
		notes[i].AddComment(c)
		result = notes
		return putJSON(tx, NotesKey, notes)
	}, NotesKey)
	if err != nil {
		return nil, err
	}
	return result, nil
}
