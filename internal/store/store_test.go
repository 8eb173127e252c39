package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_GetSetRemove(t *testing.T) {
	s := NewMemoryStore()

	_, ok, err := s.Get(KeyProperties)
	assert.NoError(t, err)
	assert.False(t, ok)

	err = s.Set(KeyProperties, `[{"id":1}]`)
	assert.NoError(t, err)

	v, ok, err := s.Get(KeyProperties)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	err = s.Set(KeyProperties, `[]`)
	assert.NoError(t, err)
	v, _, _ = s.Get(KeyProperties)
	assert.Equal(t, `[]`, v)

	err = s.Remove(KeyProperties)
	assert.NoError(t, err)
	_, ok, _ = s.Get(KeyProperties)
	assert.False(t, ok)

	// Removing an absent key is a no-op.
	assert.NoError(t, s.Remove("missing"))
}
