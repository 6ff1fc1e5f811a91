// ABOUTME: Tests for Note model constructor and methods.
// ABOUTME: Validates id generation, invariants, comments, and cloning.

package models

import (
	"math"
	"testing"
	"time"
)

func TestNewNote(t *testing.T) {
	author := DemoUser()

	note := NewNote("Test Note", author)

	if note.ID == "" {
		t.Error("expected ID to be generated")
	}
	if note.Title != "Test Note" {
		t.Errorf("expected title %q, got %q", "Test Note", note.Title)
	}
	if note.Author != author {
		t.Errorf("expected author snapshot %+v, got %+v", author, note.Author)
	}
	if note.CreatedAt != time.Now().Format(DateLayout) {
		t.Errorf("expected today's date, got %q", note.CreatedAt)
	}
	if note.Downloads != 0 || note.Likes != 0 {
		t.Error("expected zero counters")
	}
	if note.Comments == nil || note.Tags == nil {
		t.Error("expected empty, non-nil comments and tags")
	}
}

func TestNoteValidatePrice(t *testing.T) {
	tests := []struct {
		name    string
		premium bool
		price   *float64
		wantErr bool
	}{
		{name: "free", premium: false, price: nil},
		{name: "premium with price", premium: true, price: price(4.99)},
		{name: "premium without price", premium: true, price: nil, wantErr: true},
		{name: "free with price", premium: false, price: price(1), wantErr: true},
		{name: "zero price", premium: true, price: price(0), wantErr: true},
		{name: "NaN price", premium: true, price: price(math.NaN()), wantErr: true},
		{name: "infinite price", premium: true, price: price(math.Inf(1)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Note{IsPremium: tt.premium, Price: tt.price}
			err := n.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidPrice(t *testing.T) {
	for _, p := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if ValidPrice(p) {
			t.Errorf("ValidPrice(%v) = true, want false", p)
		}
	}
	if !ValidPrice(0.5) {
		t.Error("ValidPrice(0.5) = false, want true")
	}
}

func TestNoteValidateCounters(t *testing.T) {
	n := Note{Likes: -1}
	if err := n.Validate(); err != ErrNegativeCounter {
		t.Errorf("expected ErrNegativeCounter, got %v", err)
	}
}

func TestNoteSetPrice(t *testing.T) {
	n := NewNote("x", DemoUser())

	n.SetPrice(price(2.5))
	if !n.IsPremium || n.Price == nil || *n.Price != 2.5 {
		t.Fatalf("expected premium note at 2.5, got %+v", n)
	}

	n.SetPrice(nil)
	if n.IsPremium || n.Price != nil {
		t.Errorf("expected free note, got premium=%v price=%v", n.IsPremium, n.Price)
	}
}

func TestAddCommentPrepends(t *testing.T) {
	n := NewNote("x", DemoUser())
	first := NewComment(DemoUser(), "first")
	second := NewComment(AdminUser(), "second")

	n.AddComment(first)
	n.AddComment(second)

	if len(n.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(n.Comments))
	}
	if n.Comments[0].Content != "second" {
		t.Errorf("expected newest comment first, got %q", n.Comments[0].Content)
	}
	if n.Comments[0].UserName != "System Admin" {
		t.Errorf("expected user snapshot, got %q", n.Comments[0].UserName)
	}
}

func TestCreatedTime(t *testing.T) {
	n := Note{CreatedAt: "2024-03-10"}
	if got := n.CreatedTime(); got.Year() != 2024 || got.Month() != time.March || got.Day() != 10 {
		t.Errorf("unexpected date %v", got)
	}

	n.CreatedAt = "not a date"
	if !n.CreatedTime().IsZero() {
		t.Error("expected zero time for garbage")
	}
}

func TestBaseFileName(t *testing.T) {
	n := Note{Title: "Organic  Chemistry: Hydrocarbons"}
	if got := n.BaseFileName(); got != "Organic_Chemistry:_Hydrocarbons" {
		t.Errorf("unexpected file name %q", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := SampleNotes()[1]
	c := orig.Clone()

	c.Tags[0] = "changed"
	*c.Price = 100
	c.Comments = append(c.Comments, NewComment(DemoUser(), "hi"))

	if orig.Tags[0] == "changed" {
		t.Error("clone shares tags")
	}
	if *orig.Price == 100 {
		t.Error("clone shares price")
	}
	if len(orig.Comments) != 0 {
		t.Error("clone shares comments")
	}
}
