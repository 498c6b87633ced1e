package mongo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	drivermongo "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/docmodel/pkg/document"
	"github.com/dmitrymomot/docmodel/pkg/mongo"
	"github.com/dmitrymomot/docmodel/pkg/schema"
	"github.com/dmitrymomot/docmodel/pkg/types"
	"github.com/dmitrymomot/docmodel/pkg/validation"
)

// offlineDatabase returns a database handle whose client never dialed.
func offlineDatabase(t *testing.T) *drivermongo.Database {
	t.Helper()
	client, err := drivermongo.Connect(options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("docmodel_test")
}

func TestStoreSaveWithoutWrites(t *testing.T) {
	posts := document.NewModel("post").
		MustKey("title", types.KindString, schema.Required())
	store := mongo.NewStore(offlineDatabase(t), posts)

	t.Run("invalid documents are not written", func(t *testing.T) {
		doc := posts.New(nil)
		err := store.Save(context.Background(), doc)
		assert.ErrorIs(t, err, validation.ErrInvalid)
		assert.True(t, doc.IsNew())
	})

	t.Run("documents of other models are rejected", func(t *testing.T) {
		other := document.NewModel("comment").MustKey("body", types.KindString)
		err := store.Save(context.Background(), other.New(nil))
		assert.ErrorIs(t, err, mongo.ErrWrongModel)
	})

	t.Run("stored documents need an id", func(t *testing.T) {
		doc := posts.Load(map[string]any{"title": "hello"})
		require.NoError(t, doc.Set("title", "world"))
		assert.ErrorIs(t, store.Save(context.Background(), doc), mongo.ErrMissingID)
	})
}
