// ABOUTME: Note model representing a shareable study document.
// ABOUTME: Provides constructor, invariants, and copy helpers.

package models

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the layout of Note.CreatedAt.
const DateLayout = "2006-01-02"

var (
	ErrInvalidPrice    = errors.New("price must be positive and set only on premium notes")
	ErrNegativeCounter = errors.New("counters must not be negative")
)

type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Course      string    `json:"course"`
	Year        string    `json:"year"`
	Subject     string    `json:"subject"`
	Tags        []string  `json:"tags"`
	Thumbnail   string    `json:"thumbnail"`
	Author      User      `json:"author"`
	Downloads   int       `json:"downloads"`
	Likes       int       `json:"likes"`
	IsPremium   bool      `json:"isPremium"`
	Price       *float64  `json:"price,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	Comments    []Comment `json:"comments"`

	FileData string `json:"fileData,omitempty"`
	FileName string `json:"fileName,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

func NewNote(title string, author User) *Note {
	id := uuid.NewString()
	return &Note{
		ID:        id,
		Title:     title,
		Tags:      []string{},
		Thumbnail: "https://picsum.photos/seed/" + id + "/400/250",
		Author:    author,
		CreatedAt: time.Now().Format(DateLayout),
		Comments:  []Comment{},
	}
}

// SetPrice marks the note premium at the given price, or free when price is nil.
func (n *Note) SetPrice(price *float64) {
	if price == nil {
		n.IsPremium = false
		n.Price = nil
		return
	}
	p := *price
	n.IsPremium = true
	n.Price = &p
}

// Validate checks the price and counter invariants.
func (n *Note) Validate() error {
	if n.IsPremium != (n.Price != nil) {
		return ErrInvalidPrice
	}
	if n.Price != nil && !ValidPrice(*n.Price) {
		return ErrInvalidPrice
	}
	if n.Downloads < 0 || n.Likes < 0 {
		return ErrNegativeCounter
	}
	return nil
}

// ValidPrice reports whether p is a positive, finite amount.
func ValidPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}

func (n *Note) HasFile() bool {
	return n.FileData != ""
}

// CreatedTime parses CreatedAt. Full timestamps are accepted as well as dates;
// unparsable values yield the zero time.
func (n *Note) CreatedTime() time.Time {
	if t, err := time.Parse(DateLayout, n.CreatedAt); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, n.CreatedAt); err == nil {
		return t
	}
	return time.Time{}
}

// AddComment puts c at the head of the comment list.
func (n *Note) AddComment(c Comment) {
	n.Comments = append([]Comment{c}, n.Comments...)
}

// BaseFileName is the title with whitespace runs replaced by underscores.
func (n *Note) BaseFileName() string {
	return strings.Join(strings.Fields(n.Title), "_")
}

// Clone returns a deep copy of the note.
func (n Note) Clone() Note {
	c := n
	if n.Tags != nil {
		c.Tags = append([]string(nil), n.Tags...)
	}
	if n.Comments != nil {
		c.Comments = append([]Comment(nil), n.Comments...)
	}
	if n.Price != nil {
		p := *n.Price
		c.Price = &p
	}
	return c
}

// CloneNotes deep-copies a note collection.
func CloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
