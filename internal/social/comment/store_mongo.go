// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/yomira-cms/internal/platform/constants"
	"github.com/taibuivan/yomira-cms/internal/platform/dberr"
	mongostore "github.com/taibuivan/yomira-cms/internal/platform/mongo"
	"github.com/taibuivan/yomira-cms/pkg/slice"
)

// commentDocument stores references as ObjectIDs, matching the "comic" and
// "user" collections.
type commentDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ComicID   primitive.ObjectID `bson:"comicId"`
	UserID    primitive.ObjectID `bson:"userId"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (document commentDocument) toDomain() *Comment {
	return &Comment{
		ID:        document.ID.Hex(),
		ComicID:   document.ComicID.Hex(),
		UserID:    document.UserID.Hex(),
		Content:   document.Content,
		CreatedAt: document.CreatedAt.UTC(),
	}
}

// MongoRepository implements [Repository] on the "comment" collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository constructs a MongoDB backed comment store.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.CollectionComment)}
}

func (repository *MongoRepository) List(context context.Context, filter Filter) ([]*Comment, error) {
	comicOID, ok := mongostore.ObjectID(filter.ComicID)
	if !ok {
		return []*Comment{}, nil
	}

	query := bson.M{FieldComicID: comicOID}
	if filter.UserID != "" {
		userOID, ok := mongostore.ObjectID(filter.UserID)
		if !ok {
			return []*Comment{}, nil
		}
		query[FieldUserID] = userOID
	}

	cursor, err := repository.collection.Find(context, query,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	var documents []commentDocument
	if err := cursor.All(context, &documents); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	return slice.Map(documents, commentDocument.toDomain), nil
}

func (repository *MongoRepository) Create(context context.Context, comment *Comment) error {
	comicOID, comicOK := mongostore.ObjectID(comment.ComicID)
	userOID, userOK := mongostore.ObjectID(comment.UserID)
	if !comicOK || !userOK {
		return fmt.Errorf("insert comment: malformed reference %q/%q", comment.ComicID, comment.UserID)
	}

	document := commentDocument{
		ID:        primitive.NewObjectID(),
		ComicID:   comicOID,
		UserID:    userOID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}

	if _, err := repository.collection.InsertOne(context, document); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	comment.ID = document.ID.Hex()
	return nil
}

func (repository *MongoRepository) UpdateContent(context context.Context, id, content string) (*Comment, error) {
	oid, ok := mongostore.ObjectID(id)
	if !ok {
		return nil, ErrNotFound
	}

	var document commentDocument
	err := repository.collection.FindOneAndUpdate(context,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{FieldContent: content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&document)
	if err != nil {
		return nil, dberr.Wrap(err, "update comment", ErrNotFound)
	}
	return document.toDomain(), nil
}

func (repository *MongoRepository) Delete(context context.Context, id string) error {
	oid, ok := mongostore.ObjectID(id)
	if !ok {
		return ErrNotFound
	}

	result, err := repository.collection.DeleteOne(context, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
