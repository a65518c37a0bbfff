// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table     string
	ID        string
	ComicID   string
	UserID    string
	Content   string
	CreatedAt string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:     "social.comment",
	ID:        "id",
	ComicID:   "comicid",
	UserID:    "userid",
	Content:   "content",
	CreatedAt: "createdat",
}

func (t SocialCommentTable) Columns() []string {
	return []string{t.ID, t.ComicID, t.UserID, t.Content, t.CreatedAt}
}
