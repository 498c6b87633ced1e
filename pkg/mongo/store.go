package mongo

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/docmodel/pkg/document"
	"github.com/dmitrymomot/docmodel/pkg/logger"
)

// Store reads and writes the documents of one model.
type Store struct {
	model      *document.Model
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewStore binds model to its collection in db. Documents are logged with
// the model's logger.
func NewStore(db *mongo.Database, model *document.Model) *Store {
	return &Store{
		model:      model,
		collection: db.Collection(model.Collection()),
		logger:     model.Logger(),
	}
}

// Save validates doc and writes it: new documents are inserted whole,
// stored ones receive the update built from their changes. The document is
// committed after a successful write. Validation failures are returned as
// the report's error.
func (s *Store) Save(ctx context.Context, doc *document.Document) error {
	if doc.Model() != s.model {
		return ErrWrongModel
	}
	if !doc.Validate() {
		return doc.Err()
	}

	if doc.IsNew() {
		if _, err := s.collection.InsertOne(ctx, doc.BSON()); err != nil {
			return s.writeError(ctx, "insert", doc, err)
		}
		doc.Commit()
		return nil
	}

	id := doc.ID()
	if id == nil {
		return ErrMissingID
	}
	update := doc.Update()
	if len(update) == 0 {
		return nil
	}
	if _, err := s.collection.UpdateOne(ctx, bson.D{{Key: document.IDAlias, Value: id}}, update); err != nil {
		return s.writeError(ctx, "update", doc, err)
	}
	doc.Commit()
	return nil
}

func (s *Store) writeError(ctx context.Context, op string, doc *document.Document, err error) error {
	s.logger.ErrorContext(ctx, "document write failed",
		logger.Model(s.model.Name()),
		logger.Collection(s.model.Collection()),
		logger.DocumentID(doc.ID()),
		slog.String("operation", op),
		logger.Error(err),
	)
	return errors.Join(ErrWriteFailed, err)
}

// Find loads the document stored under id.
func (s *Store) Find(ctx context.Context, id any) (*document.Document, error) {
	var raw bson.M
	err := s.collection.FindOne(ctx, bson.D{{Key: document.IDAlias, Value: id}}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.model.Load(raw), nil
}

// Delete removes the document stored under id.
func (s *Store) Delete(ctx context.Context, id any) error {
	res, err := s.collection.DeleteOne(ctx, bson.D{{Key: document.IDAlias, Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
