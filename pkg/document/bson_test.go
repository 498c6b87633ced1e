package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/docmodel/pkg/document"
	"github.com/dmitrymomot/docmodel/pkg/schema"
	"github.com/dmitrymomot/docmodel/pkg/types"
)

func storedModel() *document.Model {
	return document.NewModel("post").
		MustKey("id", types.KindObjectID, schema.WithAlias(document.IDAlias), schema.WithDefault(bson.NewObjectID)).
		MustKey("title", types.KindString, schema.WithAlias("t")).
		MustKey("views", types.KindInteger).
		MustKey("tags", types.KindSet).
		MustKey("items", types.KindArray).
		MustKey("price", types.KindDecimal)
}

func decimal128(t *testing.T, s string) bson.Decimal128 {
	t.Helper()
	d, err := bson.ParseDecimal128(s)
	require.NoError(t, err)
	return d
}

func TestBSON(t *testing.T) {
	id := bson.NewObjectID()
	doc := storedModel().Load(map[string]any{
		"_id":    id,
		"t":      "hello",
		"views":  3,
		"tags":   bson.A{"go"},
		"items":  []any{1, 2},
		"price":  "9.99",
		"legacy": true,
	})

	assert.Equal(t, id, doc.ID())
	assert.Equal(t, bson.D{
		{Key: "_id", Value: id},
		{Key: "t", Value: "hello"},
		{Key: "views", Value: int64(3)},
		{Key: "tags", Value: bson.A{"go"}},
		{Key: "items", Value: bson.A{1, 2}},
		{Key: "price", Value: decimal128(t, "9.99")},
	}, doc.BSON())
}

func TestNewDocumentIDs(t *testing.T) {
	model := storedModel()
	first, ok := model.New(nil).ID().(bson.ObjectID)
	require.True(t, ok)
	assert.False(t, first.IsZero())

	second, ok := model.New(nil).ID().(bson.ObjectID)
	require.True(t, ok)
	assert.NotEqual(t, first, second)
}

func TestUpdate(t *testing.T) {
	load := func() *document.Document {
		return storedModel().Load(map[string]any{
			"_id":   bson.NewObjectID(),
			"t":     "hello",
			"views": 1,
			"tags":  []any{"a", "b"},
			"items": []any{1, 2},
			"price": "9.99",
		})
	}

	t.Run("nothing changed", func(t *testing.T) {
		assert.Nil(t, load().Update())
	})

	t.Run("element-wise and increment operators", func(t *testing.T) {
		doc := storedModel().Load(map[string]any{
			"_id":    bson.NewObjectID(),
			"t":      "hello",
			"views":  1,
			"tags":   []any{"a", "b"},
			"items":  []any{1, 2},
			"price":  "9.99",
			"legacy": true,
		})
		require.NoError(t, doc.Set("title", "world"))
		require.NoError(t, doc.Increment("views", 2))
		require.NoError(t, doc.Push("tags", "c"))
		require.NoError(t, doc.Pull("items", 1))
		require.NoError(t, doc.Increment("price", "0.01"))

		assert.Equal(t, bson.D{
			{Key: "$set", Value: bson.D{{Key: "t", Value: "world"}}},
			{Key: "$unset", Value: bson.D{{Key: "legacy", Value: ""}}},
			{Key: "$inc", Value: bson.D{
				{Key: "views", Value: int64(2)},
				{Key: "price", Value: decimal128(t, "0.01")},
			}},
			{Key: "$addToSet", Value: bson.D{{Key: "tags", Value: bson.D{{Key: "$each", Value: bson.A{"c"}}}}}},
			{Key: "$pullAll", Value: bson.D{{Key: "items", Value: bson.A{1}}}},
		}, doc.Update())
	})

	t.Run("arrays push", func(t *testing.T) {
		doc := load()
		require.NoError(t, doc.Push("items", 2))
		assert.Equal(t, bson.D{
			{Key: "$push", Value: bson.D{{Key: "items", Value: bson.D{{Key: "$each", Value: bson.A{2}}}}}},
		}, doc.Update())
	})

	t.Run("reordered arrays are set whole", func(t *testing.T) {
		doc := load()
		require.NoError(t, doc.Set("items", []any{2, 1}))
		require.NoError(t, doc.Push("items", 3))
		assert.Equal(t, bson.D{
			{Key: "$set", Value: bson.D{{Key: "items", Value: bson.A{2, 1, 3}}}},
		}, doc.Update())
	})

	t.Run("reordered arrays with pulls are set whole", func(t *testing.T) {
		doc := load()
		require.NoError(t, doc.Set("items", []any{1, 2, 3}))
		doc.Commit()
		require.NoError(t, doc.Set("items", []any{3, 2, 1}))
		require.NoError(t, doc.Pull("items", 2))
		assert.Equal(t, bson.D{
			{Key: "$set", Value: bson.D{{Key: "items", Value: bson.A{3, 1}}}},
		}, doc.Update())
	})

	t.Run("increments of a null field are set", func(t *testing.T) {
		doc := load()
		require.NoError(t, doc.Set("views", nil))
		doc.Commit()
		require.NoError(t, doc.Increment("views", nil))
		assert.Equal(t, bson.D{
			{Key: "$set", Value: bson.D{{Key: "views", Value: int64(1)}}},
		}, doc.Update())
	})

	t.Run("mixed pushes and pulls are set whole", func(t *testing.T) {
		doc := load()
		require.NoError(t, doc.Push("items", 3))
		require.NoError(t, doc.Pull("items", 1))
		assert.Equal(t, bson.D{
			{Key: "$set", Value: bson.D{{Key: "items", Value: bson.A{2, 3}}}},
		}, doc.Update())
	})

	t.Run("assignments after increments are set", func(t *testing.T) {
		doc := load()
		require.NoError(t, doc.Increment("views", nil))
		require.NoError(t, doc.Set("views", 10))
		require.NoError(t, doc.Increment("views", nil))
		assert.Equal(t, bson.D{
			{Key: "$set", Value: bson.D{{Key: "views", Value: int64(11)}}},
		}, doc.Update())
	})

	t.Run("new keys and keys supplied by name", func(t *testing.T) {
		id := bson.NewObjectID()
		doc := storedModel().Load(map[string]any{
			"_id":   id,
			"title": "by name",
			"views": 0,
			"tags":  []any{},
			"items": []any{},
			"price": nil,
		})
		assert.Equal(t, []string{"title"}, doc.NewKeys())
		assert.Equal(t, bson.D{
			{Key: "$set", Value: bson.D{{Key: "t", Value: "by name"}}},
			{Key: "$unset", Value: bson.D{{Key: "title", Value: ""}}},
		}, doc.Update())
	})

	t.Run("commit", func(t *testing.T) {
		doc := storedModel().New(map[string]any{"t": "draft"})
		assert.True(t, doc.IsNew())
		require.NoError(t, doc.Push("tags", "x"))

		doc.Commit()
		assert.False(t, doc.IsNew())
		assert.Nil(t, doc.Update())
		assert.Empty(t, doc.Changed())
		assert.Empty(t, doc.NewKeys())

		require.NoError(t, doc.Pull("tags", "x"))
		assert.Equal(t, bson.D{
			{Key: "$pullAll", Value: bson.D{{Key: "tags", Value: bson.A{"x"}}}},
		}, doc.Update())
	})
}
