package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JournalEntry represents a private journal entry owned by a single user.
// Entries are stored in MongoDB; OwnerID holds the owning user's UUID string.
type JournalEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"-"`

	OwnerID     string    `bson:"user_id" json:"user_id"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content" json:"content"`
	Category    string    `bson:"journal_category" json:"journal_category"`
	DateOfEntry time.Time `bson:"date_of_entry" json:"date_of_entry"`
}
