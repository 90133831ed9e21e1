package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stack4devs/stack4devs/internal/adapters/storage/storagetest"
)

func TestStore_Contract(t *testing.T) {
	storagetest.Run(t, New())
}

func TestStore_Health(t *testing.T) {
	s := New()

	assert.Equal(t, "store", s.Name())
	assert.NoError(t, s.Check(context.Background()))
	assert.NoError(t, s.Close())
}
