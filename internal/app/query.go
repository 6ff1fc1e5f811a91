// ABOUTME: Read-only queries over the cached collection.
// ABOUTME: Browsing, home-page sections, id lookup and the admin dashboard.

package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/harper/neonotes/internal/models"
)

// DefaultSectionSize is the number of notes on each home-page section.
const DefaultSectionSize = 4

// Sort orders for BrowseFilter.
const (
	SortNone    = ""
	SortRecent  = "recent"
	SortPopular = "popular"
)

// BrowseFilter narrows Browse. Zero values match everything in stored order.
type BrowseFilter struct {
	Query    string
	AuthorID string
	Sort     string
	// Limit caps the result; zero or less means no cap.
	Limit int
}

// Browse returns notes whose title or any tag contains the query
// (case-insensitive), optionally restricted to one author. The matches are
// then ordered by Sort and capped at Limit. Without a sort the stored order
// is kept.
func (s *State) Browse(f BrowseFilter) ([]models.Note, error) {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := []models.Note{}
	for _, n := range s.Notes() {
		if f.AuthorID != "" && n.Author.ID != f.AuthorID {
			continue
		}
		if q != "" && !matches(n, q) {
			continue
		}
		out = append(out, n)
	}

	switch f.Sort {
	case SortNone:
	case SortRecent:
		sortRecent(out)
	case SortPopular:
		sortPopular(out)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSort, f.Sort)
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func matches(n models.Note, q string) bool {
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Recent returns up to n notes, newest first. n <= 0 means DefaultSectionSize.
func (s *State) Recent(n int) []models.Note {
	notes := s.Notes()
	sortRecent(notes)
	return head(notes, n)
}

// Popular returns up to n notes by download count. n <= 0 means DefaultSectionSize.
func (s *State) Popular(n int) []models.Note {
	notes := s.Notes()
	sortPopular(notes)
	return head(notes, n)
}

func sortRecent(notes []models.Note) {
	slices.SortStableFunc(notes, func(a, b models.Note) int {
		return b.CreatedTime().Compare(a.CreatedTime())
	})
}

func sortPopular(notes []models.Note) {
	slices.SortStableFunc(notes, func(a, b models.Note) int {
		return b.Downloads - a.Downloads
	})
}

func head(notes []models.Note, n int) []models.Note {
	if n <= 0 {
		n = DefaultSectionSize
	}
	if len(notes) > n {
		notes = notes[:n]
	}
	return notes
}

// Find returns the note with the given id, or the single note whose id starts
// with it.
func (s *State) Find(id string) (models.Note, error) {
	if id == "" {
		return models.Note{}, ErrNoteNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match *models.Note
	for i := range s.notes {
		if s.notes[i].ID == id {
			return s.notes[i].Clone(), nil
		}
		if strings.HasPrefix(s.notes[i].ID, id) {
			if match != nil {
				return models.Note{}, fmt.Errorf("%w: %s", ErrAmbiguousPrefix, id)
			}
			match = &s.notes[i]
		}
	}
	if match == nil {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return match.Clone(), nil
}

// TagCount is a tag and how many notes carry it.
type TagCount struct {
	Name  string
	Count int
}

// Tags lists every tag in use, most used first, then alphabetical.
func (s *State) Tags() []TagCount {
	counts := map[string]int{}
	for _, n := range s.Notes() {
		for _, t := range n.Tags {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, TagCount{Name: name, Count: c})
	}
	slices.SortFunc(out, func(a, b TagCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Stats is the administrator dashboard summary.
type Stats struct {
	TotalNotes     int
	TotalDownloads int
	TotalLikes     int
	PremiumNotes   int
	// EstimatedRevenue assumes twelve sales per premium note.
	EstimatedRevenue float64
}

// Stats is only available to the administrator.
func (s *State) Stats() (Stats, error) {
	user := s.CurrentUser()
	if user == nil {
		return Stats{}, ErrNotSignedIn
	}
	if !user.IsAdmin() {
		return Stats{}, ErrForbidden
	}
	var st Stats
	for _, n := range s.Notes() {
		st.TotalNotes++
		st.TotalDownloads += n.Downloads
		st.TotalLikes += n.Likes
		if n.IsPremium {
			st.PremiumNotes++
			if n.Price != nil {
				st.EstimatedRevenue += *n.Price * 12
			}
		}
	}
	return st, nil
}
