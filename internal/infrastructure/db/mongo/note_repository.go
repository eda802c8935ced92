package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/safenotes/notes-system/internal/core/domain"
)

const notesCollection = "notes"

// NoteRepository is the MongoDB-backed note store. Note ids are drawn from
// the counters collection, keeping them monotone and never reused.
type NoteRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{db: db, coll: db.Collection(notesCollection)}
}

func (r *NoteRepository) Insert(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	id, err := nextSequence(ctx, r.db, notesCollection)
	if err != nil {
		return nil, err
	}

	stored := *note
	stored.ID = id

	if _, err := r.coll.InsertOne(ctx, stored); err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	return &stored, nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id int64) (*domain.Note, error) {
	var note domain.Note
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&note); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return &note, nil
}

func (r *NoteRepository) Update(ctx context.Context, id int64, title, content string) (*domain.Note, error) {
	var note domain.Note
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"title": title, "content": content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("update note: %w", err)
	}
	return &note, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	return res.DeletedCount > 0, nil
}
