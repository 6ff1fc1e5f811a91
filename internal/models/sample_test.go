// ABOUTME: Tests for the built-in sample set.
// ABOUTME: Checks invariants hold and copies are independent.

package models

import "testing"

func TestSampleNotesValid(t *testing.T) {
	notes := SampleNotes()
	if len(notes) != 4 {
		t.Fatalf("expected 4 sample notes, got %d", len(notes))
	}
	seen := map[string]bool{}
	for _, n := range notes {
		if err := n.Validate(); err != nil {
			t.Errorf("sample %s invalid: %v", n.ID, err)
		}
		if seen[n.ID] {
			t.Errorf("duplicate id %s", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestSampleNotesFreshCopy(t *testing.T) {
	a := SampleNotes()
	a[0].Likes = 0
	a[1].Tags[0] = "mutated"

	b := SampleNotes()
	if b[0].Likes != 342 {
		t.Errorf("expected fresh likes, got %d", b[0].Likes)
	}
	if b[1].Tags[0] != "Math" {
		t.Errorf("expected fresh tags, got %v", b[1].Tags)
	}
}

func TestDemoIdentities(t *testing.T) {
	if !AdminUser().IsAdmin() {
		t.Error("expected admin identity to be admin")
	}
	if DemoUser().IsAdmin() {
		t.Error("expected demo member not to be admin")
	}
}
