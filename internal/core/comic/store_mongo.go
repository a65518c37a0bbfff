// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/yomira-cms/internal/platform/constants"
	"github.com/taibuivan/yomira-cms/internal/platform/dberr"
	mongostore "github.com/taibuivan/yomira-cms/internal/platform/mongo"
	"github.com/taibuivan/yomira-cms/pkg/slice"
)

// # MongoDB Repository

// comicDocument is the stored shape of a comic in the "comic" collection.
type comicDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Author      string             `bson:"author"`
	Year        int                `bson:"year"`
	CoverImage  string             `bson:"coverImage"`
	Images      []string           `bson:"images"`
}

func (document comicDocument) toDomain() *Comic {
	images := document.Images
	if images == nil {
		images = []string{}
	}
	return &Comic{
		ID:          document.ID.Hex(),
		Title:       document.Title,
		Description: document.Description,
		Author:      document.Author,
		Year:        document.Year,
		CoverImage:  document.CoverImage,
		Images:      images,
	}
}

// mongoRepository implements the [Repository] interface on a Mongo collection.
type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository constructs a MongoDB backed comic store.
func NewMongoRepository(database *mongo.Database) Repository {
	return &mongoRepository{collection: database.Collection(constants.CollectionComic)}
}

// List returns every document in natural order.
func (repository *mongoRepository) List(context context.Context) ([]*Comic, error) {
	cursor, err := repository.collection.Find(context, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list comics: %w", err)
	}

	var documents []comicDocument
	if err := cursor.All(context, &documents); err != nil {
		return nil, fmt.Errorf("decode comics: %w", err)
	}

	return slice.Map(documents, comicDocument.toDomain), nil
}

// FindByID returns the comic with the given ObjectID.
func (repository *mongoRepository) FindByID(context context.Context, id string) (*Comic, error) {
	oid, ok := mongostore.ObjectID(id)
	if !ok {
		return nil, ErrNotFound
	}

	var document comicDocument
	err := repository.collection.FindOne(context, bson.M{"_id": oid}).Decode(&document)
	if err != nil {
		return nil, dberr.Wrap(err, "find comic", ErrNotFound)
	}
	return document.toDomain(), nil
}

// Create inserts the comic and copies the generated ObjectID back.
func (repository *mongoRepository) Create(context context.Context, comic *Comic) error {
	document := comicDocument{
		ID:          primitive.NewObjectID(),
		Title:       comic.Title,
		Description: comic.Description,
		Author:      comic.Author,
		Year:        comic.Year,
		CoverImage:  comic.CoverImage,
		Images:      comic.Images,
	}

	if _, err := repository.collection.InsertOne(context, document); err != nil {
		return fmt.Errorf("insert comic: %w", err)
	}

	comic.ID = document.ID.Hex()
	return nil
}

// Update sets the supplied fields and returns the document after the update.
func (repository *mongoRepository) Update(context context.Context, id string, patch Patch) (*Comic, error) {
	oid, ok := mongostore.ObjectID(id)
	if !ok {
		return nil, ErrNotFound
	}

	// An empty $set is rejected by the server.
	if patch.IsEmpty() {
		return repository.FindByID(context, id)
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Year != nil {
		set["year"] = *patch.Year
	}
	if patch.CoverImage != nil {
		set["coverImage"] = *patch.CoverImage
	}

	var document comicDocument
	err := repository.collection.FindOneAndUpdate(context,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&document)
	if err != nil {
		return nil, dberr.Wrap(err, "update comic", ErrNotFound)
	}
	return document.toDomain(), nil
}

// Delete removes the document, reporting ErrNotFound when nothing matched.
func (repository *mongoRepository) Delete(context context.Context, id string) error {
	oid, ok := mongostore.ObjectID(id)
	if !ok {
		return ErrNotFound
	}

	result, err := repository.collection.DeleteOne(context, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comic: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
