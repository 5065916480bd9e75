package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/daybook-app/daybook-backend/internal/models"
)

// MongoJournalStore stores journal entries in the journals collection.
// Every filter includes user_id, so an entry owned by someone else is
// indistinguishable from a missing one.
type MongoJournalStore struct {
	db *mongo.Database
}

func NewMongoJournalStore(db *mongo.Database) *MongoJournalStore {
	return &MongoJournalStore{db: db}
}

func (s *MongoJournalStore) collection() *mongo.Collection {
	return s.db.Collection("journals")
}

func (s *MongoJournalStore) Insert(ctx context.Context, entry *models.JournalEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	_, err := s.collection().InsertOne(ctx, entry)
	return err
}

func (s *MongoJournalStore) FindByID(ctx context.Context, ownerID, id string) (*models.JournalEntry, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var entry models.JournalEntry
	err = s.collection().FindOne(ctx, bson.M{"_id": objectID, "user_id": ownerID}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *MongoJournalStore) ListByOwner(ctx context.Context, ownerID string) ([]models.JournalEntry, error) {
	return s.list(ctx, bson.M{"user_id": ownerID})
}

func (s *MongoJournalStore) ListByOwnerYear(ctx context.Context, ownerID string, year int) ([]models.JournalEntry, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return s.list(ctx, bson.M{
		"user_id":       ownerID,
		"date_of_entry": bson.M{"$gte": start, "$lt": end},
	})
}

func (s *MongoJournalStore) ListByOwnerCategory(ctx context.Context, ownerID, category string) ([]models.JournalEntry, error) {
	return s.list(ctx, bson.M{"user_id": ownerID, "journal_category": category})
}

func (s *MongoJournalStore) ListByOwnerDate(ctx context.Context, ownerID string, day time.Time) ([]models.JournalEntry, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	return s.list(ctx, bson.M{
		"user_id":       ownerID,
		"date_of_entry": bson.M{"$gte": start, "$lt": end},
	})
}

func (s *MongoJournalStore) list(ctx context.Context, filter bson.M) ([]models.JournalEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date_of_entry", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.collection().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]models.JournalEntry, 0)
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *MongoJournalStore) Update(ctx context.Context, ownerID, id string, upd JournalUpdate) (*models.JournalEntry, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	after := options.After
	var entry models.JournalEntry
	err = s.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": objectID, "user_id": ownerID},
		bson.M{"$set": bson.M{
			"title":            upd.Title,
			"content":          upd.Content,
			"journal_category": upd.Category,
			"date_of_entry":    upd.DateOfEntry,
			"updated_at":       time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *MongoJournalStore) Delete(ctx context.Context, ownerID, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": objectID, "user_id": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
