// ABOUTME: Tests for the application state holder.
// ABOUTME: Uses a real gateway over an in-memory badger store.

package app

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/neonotes/internal/kv"
	"github.com/harper/neonotes/internal/logging"
	"github.com/harper/neonotes/internal/models"
	"github.com/harper/neonotes/internal/storage"
)

func setupState(t *testing.T) (*State, *storage.Gateway) {
	t.Helper()
	store, err := kv.OpenInMemory(logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	gw := storage.New(store, nil)
	s := New(gw, nil)
	s.now = func() time.Time { return time.Date(2025, 5, 17, 9, 30, 0, 0, time.UTC) }
	require.NoError(t, s.Load(context.Background()))
	return s, gw
}

// setupSharedStates returns two states loaded from one Redis store, like two
// devices signed in to the same account.
func setupSharedStates(t *testing.T) (*State, *State, *storage.Gateway) {
	t.Helper()
	mr := miniredis.RunT(t)
	open := func() (*State, *storage.Gateway) {
		store := kv.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
		t.Cleanup(func() { store.Close() })
		gw := storage.New(store, nil)
		s := New(gw, nil)
		require.NoError(t, s.Load(context.Background()))
		return s, gw
	}
	a, gw := open()
	b, _ := open()
	return a, b, gw
}

func login(t *testing.T, s *State, email, password string) {
	t.Helper()
	_, err := s.Login(context.Background(), email, password)
	require.NoError(t, err)
}

// assertInSync checks the cache mirrors what the gateway has persisted.
func assertInSync(t *testing.T, s *State, gw *storage.Gateway) {
	t.Helper()
	ctx := context.Background()
	stored, err := gw.GetNotes(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(stored, s.Notes()); diff != "" {
		t.Errorf("cache out of sync with store (-store +cache):\n%s", diff)
	}
	liked, err := gw.GetLikedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, liked, s.LikedIDs())
}

func TestLoad(t *testing.T) {
	s, gw := setupState(t)

	assert.Len(t, s.Notes(), 4)
	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, s.LikedIDs())
	assertInSync(t, s, gw)
}

func TestLoadRestoresSession(t *testing.T) {
	s, gw := setupState(t)
	login(t, s, "alex@example.com", "student")

	fresh := New(gw, nil)
	require.NoError(t, fresh.Load(context.Background()))
	require.NotNil(t, fresh.CurrentUser())
	assert.Equal(t, "u1", fresh.CurrentUser().ID)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s, _ := setupState(t)

	notes := s.Notes()
	notes[0].Title = "mutated"
	notes[0].Tags[0] = "mutated"
	assert.NotEqual(t, "mutated", s.Notes()[0].Title)
	assert.NotEqual(t, "mutated", s.Notes()[0].Tags[0])
}

func TestLoginLogout(t *testing.T) {
	s, _ := setupState(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "alex@example.com", "wrong")
	assert.ErrorIs(t, err, storage.ErrInvalidCredentials)
	assert.Nil(t, s.CurrentUser())

	user, err := s.Login(ctx, "admin@neonotes.com", "admin")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
	assert.Equal(t, "admin1", s.CurrentUser().ID)

	require.NoError(t, s.Logout(ctx))
	assert.Nil(t, s.CurrentUser())
}

func TestToggleLike(t *testing.T) {
	s, gw := setupState(t)
	ctx := context.Background()

	liked, err := s.ToggleLike(ctx, "n2")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.True(t, s.IsLiked("n2"))
	assertInSync(t, s, gw)

	liked, err = s.ToggleLike(ctx, "n2")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.False(t, s.IsLiked("n2"))
	assertInSync(t, s, gw)

	_, err = s.ToggleLike(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestUploadRequiresUser(t *testing.T) {
	s, _ := setupState(t)

	_, err := s.Upload(context.Background(), Draft{Title: "x"})
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.Len(t, s.Notes(), 4)
}

func TestUpload(t *testing.T) {
	s, gw := setupState(t)
	login(t, s, "alex@example.com", "student")

	note, err := s.Upload(context.Background(), Draft{
		Title:     "  Graph Theory  ",
		Course:    "Mathematics",
		Tags:      []string{"Graphs", " graphs ", "Math", ""},
		IsPremium: true,
		Price:     2.5,
		File:      &FileUpload{Name: "graphs.pdf", MimeType: "application/pdf", Data: []byte("%PDF-1.4")},
	})
	require.NoError(t, err)

	assert.Equal(t, "Graph Theory", note.Title)
	assert.Equal(t, ContentPlaceholder, note.Content)
	assert.Equal(t, "2025-05-17", note.CreatedAt)
	assert.Equal(t, "u1", note.Author.ID)
	assert.Equal(t, []string{"Graphs", "graphs", "Math"}, note.Tags)
	assert.Equal(t, "https://picsum.photos/seed/"+note.ID+"/400/250", note.Thumbnail)
	assert.Zero(t, note.Downloads)
	assert.Zero(t, note.Likes)
	require.NotNil(t, note.Price)
	assert.Equal(t, 2.5, *note.Price)
	assert.True(t, strings.HasPrefix(note.FileData, "data:application/pdf;base64,"))
	require.NoError(t, note.Validate())

	notes := s.Notes()
	assert.Len(t, notes, 5)
	assert.Equal(t, note.ID, notes[0].ID)
	assertInSync(t, s, gw)
}

func TestUploadFreeNoteHasNoPrice(t *testing.T) {
	s, _ := setupState(t)
	login(t, s, "alex@example.com", "student")

	note, err := s.Upload(context.Background(), Draft{Title: "Free", Content: "body", Price: 3})
	require.NoError(t, err)
	assert.False(t, note.IsPremium)
	assert.Nil(t, note.Price)
	assert.Equal(t, "body", note.Content)
}

func TestUploadRejects(t *testing.T) {
	s, _ := setupState(t)
	login(t, s, "alex@example.com", "student")
	ctx := context.Background()

	_, err := s.Upload(ctx, Draft{Title: "p", IsPremium: true})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = s.Upload(ctx, Draft{Title: "nan", IsPremium: true, Price: math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = s.Upload(ctx, Draft{Title: "inf", IsPremium: true, Price: math.Inf(1)})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	big := make([]byte, MaxFileSize+1)
	_, err = s.Upload(ctx, Draft{Title: "big", File: &FileUpload{Name: "big.bin", Data: big}})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	assert.Len(t, s.Notes(), 4)
}

func TestPostComment(t *testing.T) {
	s, gw := setupState(t)
	ctx := context.Background()

	_, err := s.PostComment(ctx, "n1", "hello")
	assert.ErrorIs(t, err, ErrNotSignedIn)

	login(t, s, "alex@example.com", "student")
	_, err = s.PostComment(ctx, "n1", "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)

	first, err := s.PostComment(ctx, "n1", "first")
	require.NoError(t, err)
	second, err := s.PostComment(ctx, "n1", " second ")
	require.NoError(t, err)
	assert.Equal(t, "second", second.Content)
	assert.Equal(t, "Alex Student", second.UserName)

	note, err := s.Find("n1")
	require.NoError(t, err)
	require.Len(t, note.Comments, 2)
	assert.Equal(t, second.ID, note.Comments[0].ID)
	assert.Equal(t, first.ID, note.Comments[1].ID)
	assertInSync(t, s, gw)
}

func TestPostCommentKeepsOtherDevicesCounters(t *testing.T) {
	a, b, gw := setupSharedStates(t)
	ctx := context.Background()

	for range 3 {
		_, err := b.Download(ctx, "n1")
		require.NoError(t, err)
	}
	liked, err := b.ToggleLike(ctx, "n1")
	require.NoError(t, err)
	require.True(t, liked)

	// a still holds the collection as it was at load time.
	login(t, a, "alex@example.com", "student")
	c, err := a.PostComment(ctx, "n1", "late to the party")
	require.NoError(t, err)

	stored, err := gw.GetNotes(ctx)
	require.NoError(t, err)
	var n1 models.Note
	for _, n := range stored {
		if n.ID == "n1" {
			n1 = n
		}
	}
	assert.Equal(t, 343, n1.Likes)
	assert.Equal(t, 1208, n1.Downloads)
	require.NotEmpty(t, n1.Comments)
	assert.Equal(t, c.ID, n1.Comments[0].ID)

	likedIDs, err := gw.GetLikedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"n1"}, likedIDs)

	// The commenting state adopts the stored counters too.
	note, err := a.Find("n1")
	require.NoError(t, err)
	assert.Equal(t, 343, note.Likes)
	assert.Equal(t, 1208, note.Downloads)
}

func TestDownloadContentAsText(t *testing.T) {
	s, gw := setupState(t)

	file, err := s.Download(context.Background(), "n3")
	require.NoError(t, err)
	assert.Equal(t, "Organic_Chemistry:_Hydrocarbons.txt", file.Name)
	assert.Equal(t, "text/plain", file.MimeType)
	assert.Contains(t, string(file.Data), "Hydrocarbons are organic compounds")

	note, err := s.Find("n3")
	require.NoError(t, err)
	assert.Equal(t, 544, note.Downloads)
	assertInSync(t, s, gw)
}

func TestDownloadAttachedFile(t *testing.T) {
	s, _ := setupState(t)
	login(t, s, "alex@example.com", "student")
	ctx := context.Background()

	note, err := s.Upload(ctx, Draft{
		Title: "Slides",
		File:  &FileUpload{Name: "slides.txt", MimeType: "text/plain", Data: []byte("slide one")},
	})
	require.NoError(t, err)

	file, err := s.Download(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "slides.txt", file.Name)
	assert.Equal(t, []byte("slide one"), file.Data)

	_, err = s.Download(ctx, "nothing-here")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDownloadUnnamedFileGetsExtension(t *testing.T) {
	s, _ := setupState(t)
	ctx := context.Background()

	require.NoError(t, s.ImportNotes(ctx, []models.Note{
		{ID: "pdf", Title: "Lecture  Scan", FileData: models.EncodeDataURI("application/pdf", []byte("%PDF-1.4"))},
		{ID: "odd", Title: "Mystery", FileData: models.EncodeDataURI("application/x-neonotes-unknown", []byte("?"))},
	}))

	tests := []struct {
		id   string
		want string
	}{
		{"pdf", "Lecture_Scan.pdf"},
		{"odd", "Mystery.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			file, err := s.Download(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, file.Name)
		})
	}
}

func TestImportNotes(t *testing.T) {
	s, gw := setupState(t)
	ctx := context.Background()

	bad := []models.Note{{ID: "x", IsPremium: true}}
	assert.ErrorIs(t, s.ImportNotes(ctx, bad), ErrInvalidPrice)
	nan := math.NaN()
	assert.ErrorIs(t, s.ImportNotes(ctx, []models.Note{{ID: "y", IsPremium: true, Price: &nan}}), ErrInvalidPrice)
	assert.Len(t, s.Notes(), 4)

	require.NoError(t, s.ImportNotes(ctx, []models.Note{{ID: "only", Title: "Only"}}))
	notes := s.Notes()
	require.Len(t, notes, 1)
	assert.NotNil(t, notes[0].Tags)
	assert.NotNil(t, notes[0].Comments)
	assertInSync(t, s, gw)
}

func TestAddAndUpdateNote(t *testing.T) {
	s, gw := setupState(t)
	ctx := context.Background()

	require.NoError(t, s.AddNote(ctx, models.Note{ID: "extra", Title: "Extra", Tags: []string{}, Comments: []models.Comment{}}))
	assert.Equal(t, "extra", s.Notes()[0].ID)

	n, err := s.Find("extra")
	require.NoError(t, err)
	n.Title = "Renamed"
	require.NoError(t, s.UpdateNote(ctx, n))
	assert.Equal(t, "Renamed", s.Notes()[0].Title)
	assertInSync(t, s, gw)
}
