package document_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docmodel/pkg/document"
	"github.com/dmitrymomot/docmodel/pkg/logger"
	"github.com/dmitrymomot/docmodel/pkg/schema"
	"github.com/dmitrymomot/docmodel/pkg/types"
	"github.com/dmitrymomot/docmodel/pkg/validation"
	"github.com/dmitrymomot/docmodel/pkg/validator"
)

func TestModelKey(t *testing.T) {
	t.Run("defines keys in order", func(t *testing.T) {
		m := document.NewModel("post").
			MustKey("title", types.KindString).
			MustKey("views", types.KindInteger)
		assert.Equal(t, []string{"title", "views"}, m.Schema().Names())
		assert.Equal(t, "post", m.Collection())
	})

	t.Run("definition errors add nothing", func(t *testing.T) {
		m := document.NewModel("post").MustKey("title", types.KindString)

		_, err := m.Key("title", types.KindString)
		assert.ErrorIs(t, err, schema.ErrDuplicateKey)

		_, err = m.Key("body", "money")
		assert.ErrorIs(t, err, types.ErrUnknownType)

		_, err = m.Key("body", types.KindString, schema.WithLength(10, 1))
		assert.ErrorIs(t, err, validator.ErrInvalidParams)

		_, err = m.Key("code", types.KindString, schema.WithFormat("(["))
		assert.ErrorIs(t, err, validator.ErrInvalidParams)

		assert.Equal(t, []string{"title"}, m.Schema().Names())
		assert.Zero(t, m.Chain().Len())
	})

	t.Run("must key panics", func(t *testing.T) {
		m := document.NewModel("post").MustKey("title", types.KindString)
		assert.Panics(t, func() { m.MustKey("title", types.KindString) })
	})

	t.Run("definition errors are logged", func(t *testing.T) {
		buf := &bytes.Buffer{}
		m := document.NewModel("post", document.WithLogger(logger.New(logger.WithOutput(buf))))
		_, err := m.Key("body", "money")
		require.Error(t, err)
		assert.Contains(t, buf.String(), `"msg":"invalid model definition"`)
		assert.Contains(t, buf.String(), `"model":"post"`)
	})
}

func TestModelValidates(t *testing.T) {
	m := document.NewModel("account").
		MustKey("password", types.KindString).
		MustKey("confirmation", types.KindString)

	t.Run("unknown attributes", func(t *testing.T) {
		err := m.Validates(validator.Presence, nil, "email")
		assert.ErrorIs(t, err, document.ErrUnknownAttribute)
	})

	t.Run("unknown validators", func(t *testing.T) {
		err := m.Validates("uniqueness", nil, "password")
		assert.ErrorIs(t, err, validator.ErrUnknownValidator)
	})

	t.Run("wrong arity", func(t *testing.T) {
		err := m.Validates(validator.ValueMatch, nil, "password")
		assert.ErrorIs(t, err, validator.ErrArity)
	})

	t.Run("nil units", func(t *testing.T) {
		assert.ErrorIs(t, m.Validate(nil), validation.ErrInvalidUnit)
	})

	t.Run("chains reading unknown attributes", func(t *testing.T) {
		chain := validation.NewChain(validation.IfPresent("email"))
		assert.ErrorIs(t, m.Validate(chain), document.ErrUnknownAttribute)
	})
}
