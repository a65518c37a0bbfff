// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the relational table and column names shared by the
// postgres repositories and the migration files.
package schema

// CoreComicTable represents the 'core.comic' table
type CoreComicTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Author      string
	Year        string
	CoverImage  string
	Images      string
}

// CoreComic is the schema definition for core.comic
var CoreComic = CoreComicTable{
	Table:       "core.comic",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Author:      "author",
	Year:        "year",
	CoverImage:  "coverimage",
	Images:      "images",
}

// Columns returns all column names in scan order.
func (t CoreComicTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.Author, t.Year, t.CoverImage, t.Images,
	}
}
