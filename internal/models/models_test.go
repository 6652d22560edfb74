package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONList(t *testing.T) {
	t.Run("Nil-список сериализуется как пустой массив", func(t *testing.T) {
		var list JSONList

		value, err := list.Value()
		require.NoError(t, err)
		assert.Equal(t, []byte("[]"), value)
	})

	t.Run("Чтение jsonb-байтов", func(t *testing.T) {
		var list JSONList

		require.NoError(t, list.Scan([]byte(`["a","b"]`)))
		assert.Equal(t, JSONList{"a", "b"}, list)
	})

	t.Run("NULL из базы дает пустой список", func(t *testing.T) {
		var list JSONList

		require.NoError(t, list.Scan(nil))
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("Неожиданный тип", func(t *testing.T) {
		var list JSONList

		assert.Error(t, list.Scan(42))
	})
}
