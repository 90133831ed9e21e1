package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, "saas", FoldASCII("SaaS"))
	assert.Equal(t, "already lower", FoldASCII("already lower"))
	assert.Equal(t, "Éclair", FoldASCII("Éclair"))
	assert.Equal(t, "", FoldASCII(""))
}

func TestEqualFoldASCII(t *testing.T) {
	assert.True(t, EqualFoldASCII("Marketing", "MARKETING"))
	assert.False(t, EqualFoldASCII("Marketing", "market"))
	assert.False(t, EqualFoldASCII("straße", "STRASSE"))
}

func TestContainsFoldASCII(t *testing.T) {
	assert.True(t, ContainsFoldASCII("Marketing", "MARKET"))
	assert.True(t, ContainsFoldASCII("anything", ""))
	assert.False(t, ContainsFoldASCII("", "x"))
	assert.False(t, ContainsFoldASCII("Blog", "blogging"))
}
