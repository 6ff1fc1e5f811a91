// ABOUTME: User-facing actions: uploading, commenting and downloading notes.
// ABOUTME: Builds new records and routes them through the gateway.

package app

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/harper/neonotes/internal/models"
)

// MaxFileSize is the largest attachment Upload accepts.
const MaxFileSize = 2 << 20

// ContentPlaceholder is stored when an upload carries no text content.
const ContentPlaceholder = "This note contains a file attachment. The text content was not extracted."

// FileUpload is a raw attachment.
type FileUpload struct {
	Name     string
	MimeType string
	Data     []byte
}

// Draft is the upload form.
type Draft struct {
	Title       string
	Description string
	Content     string
	Course      string
	Year        string
	Subject     string
	Tags        []string
	IsPremium   bool
	Price       float64
	File        *FileUpload
}

// Upload publishes a new note authored by the signed-in user.
func (s *State) Upload(ctx context.Context, d Draft) (models.Note, error) {
	author, err := s.requireUser()
	if err != nil {
		return models.Note{}, err
	}
	if d.IsPremium && !models.ValidPrice(d.Price) {
		return models.Note{}, ErrInvalidPrice
	}
	if d.File != nil && len(d.File.Data) > MaxFileSize {
		return models.Note{}, fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, d.File.Name, len(d.File.Data))
	}

	note := models.NewNote(strings.TrimSpace(d.Title), author)
	note.CreatedAt = s.now().Format(models.DateLayout)
	note.Description = d.Description
	note.Content = d.Content
	if strings.TrimSpace(note.Content) == "" {
		note.Content = ContentPlaceholder
	}
	note.Course = d.Course
	note.Year = d.Year
	note.Subject = d.Subject
	note.Tags = models.MergeTags(nil, d.Tags...)
	if d.IsPremium {
		price := d.Price
		note.SetPrice(&price)
	}
	if d.File != nil {
		note.FileName = d.File.Name
		note.MimeType = d.File.MimeType
		note.FileData = models.EncodeDataURI(d.File.MimeType, d.File.Data)
	}

	if err := s.AddNote(ctx, *note); err != nil {
		return models.Note{}, err
	}
	s.logger.Info("uploaded note", "id", note.ID, "title", note.Title, "premium", note.IsPremium)
	return *note, nil
}

// PostComment adds a comment by the signed-in user to the top of the note's
// discussion.
func (s *State) PostComment(ctx context.Context, noteID, text string) (models.Comment, error) {
	author, err := s.requireUser()
	if err != nil {
		return models.Comment{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Comment{}, ErrEmptyComment
	}
	note, err := s.Find(noteID)
	if err != nil {
		return models.Comment{}, err
	}
	c := models.NewComment(author, text)
	c.CreatedAt = s.now().UTC()
	notes, err := s.gw.AddComment(ctx, note.ID, c)
	if err != nil {
		return models.Comment{}, err
	}
	s.setNotes(notes)
	return c, nil
}

// DownloadFile is what a download hands to the user.
type DownloadFile struct {
	Name     string
	MimeType string
	Data     []byte
}

// Download returns the attached file, or the note text when there is none,
// and counts the download.
func (s *State) Download(ctx context.Context, noteID string) (DownloadFile, error) {
	note, err := s.Find(noteID)
	if err != nil {
		return DownloadFile{}, err
	}

	var file DownloadFile
	if note.HasFile() {
		data, mimeType, err := models.DecodeDataURI(note.FileData)
		if err != nil {
			return DownloadFile{}, fmtNote(note.ID, err)
		}
		if note.MimeType != "" {
			mimeType = note.MimeType
		}
		name := note.FileName
		if name == "" {
			name = note.BaseFileName() + fileExtension(mimeType)
		}
		file = DownloadFile{Name: name, MimeType: mimeType, Data: data}
	} else {
		file = DownloadFile{
			Name:     note.BaseFileName() + ".txt",
			MimeType: "text/plain",
			Data:     []byte(note.Content),
		}
	}

	notes, err := s.gw.IncrementDownload(ctx, note.ID)
	if err != nil {
		return DownloadFile{}, err
	}
	s.setNotes(notes)
	return file, nil
}

// fileExtension picks an extension for an unnamed attachment, defaulting to
// .pdf like uploads from the web client.
func fileExtension(mimeType string) string {
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
			return exts[0]
		}
	}
	return ".pdf"
}

func fmtNote(id string, err error) error {
	return fmt.Errorf("note %s: %w", id, err)
}
