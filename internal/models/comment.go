// ABOUTME: Comment model for replies attached to a note.
// ABOUTME: Carries a denormalized snapshot of the commenting user.

package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewComment(author User, content string) Comment {
	return Comment{
		ID:         "c" + uuid.NewString(),
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
}
