// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

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
	"github.com/taibuivan/yomira-cms/internal/platform/sec"
	"github.com/taibuivan/yomira-cms/pkg/slice"
)

// # MongoDB Repository

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
	Email    string             `bson:"email"`
	Fullname string             `bson:"fullname"`
	Role     int                `bson:"role"`
}

func newUserDocument(user *User) userDocument {
	return userDocument{
		Username: user.Username,
		Password: user.Password,
		Email:    user.Email,
		Fullname: user.Fullname,
		Role:     int(user.Role),
	}
}

func (document userDocument) toDomain() *User {
	return &User{
		ID:       document.ID.Hex(),
		Username: document.Username,
		Password: document.Password,
		Email:    document.Email,
		Fullname: document.Fullname,
		Role:     sec.Role(document.Role),
	}
}

// MongoRepository implements [Repository] on the "user" collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a new MongoDB implementation for accounts.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.CollectionUser)}
}

// EnsureIndexes creates the unique indexes on username and email.
// It is idempotent and runs once at startup.
func (repository *MongoRepository) EnsureIndexes(context context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(context, []mongo.IndexModel{
		{Keys: bson.D{{Key: FieldUsername, Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: FieldEmail, Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("create account indexes: %w", err)
	}
	return nil
}

func (repository *MongoRepository) List(context context.Context) ([]*User, error) {
	cursor, err := repository.collection.Find(context, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	var documents []userDocument
	if err := cursor.All(context, &documents); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}

	return slice.Map(documents, userDocument.toDomain), nil
}

func (repository *MongoRepository) FindByID(context context.Context, id string) (*User, error) {
	oid, ok := mongostore.ObjectID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return repository.findOne(context, bson.M{"_id": oid})
}

func (repository *MongoRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findOne(context, bson.M{FieldUsername: username})
}

func (repository *MongoRepository) findOne(context context.Context, filter bson.M) (*User, error) {
	var document userDocument
	if err := repository.collection.FindOne(context, filter).Decode(&document); err != nil {
		return nil, dberr.Wrap(err, "find account", ErrNotFound)
	}
	return document.toDomain(), nil
}

func (repository *MongoRepository) Create(context context.Context, user *User) error {
	document := newUserDocument(user)
	document.ID = primitive.NewObjectID()

	if _, err := repository.collection.InsertOne(context, document); err != nil {
		return fmt.Errorf("insert account: %w", err)
	}

	user.ID = document.ID.Hex()
	return nil
}

func (repository *MongoRepository) Replace(context context.Context, user *User) (*User, error) {
	oid, ok := mongostore.ObjectID(user.ID)
	if !ok {
		return nil, ErrNotFound
	}

	document := newUserDocument(user)
	document.ID = oid

	var stored userDocument
	err := repository.collection.FindOneAndReplace(context,
		bson.M{"_id": oid},
		document,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		return nil, dberr.Wrap(err, "update account", ErrNotFound)
	}
	return stored.toDomain(), nil
}

func (repository *MongoRepository) Delete(context context.Context, id string) error {
	oid, ok := mongostore.ObjectID(id)
	if !ok {
		return ErrNotFound
	}

	result, err := repository.collection.DeleteOne(context, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
