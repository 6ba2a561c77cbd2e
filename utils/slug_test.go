package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "test", GenerateSlug("Test"))
	assert.Equal(t, "jalgade-tervis", GenerateSlug("Jalgade Tervis!"))
}

func TestGenerateSlugEstonianLetters(t *testing.T) {
	assert.Equal(t, "kuunte-hooldus", GenerateSlug("Küünte hooldus"))
	assert.Equal(t, "voidumasin", GenerateSlug("Võidumasin"))
}

func TestGenerateSlugCyrillic(t *testing.T) {
	assert.Equal(t, "zdorove-nog", GenerateSlug("Здоровье ног"))
}

func TestGenerateSlugTrimsHyphens(t *testing.T) {
	assert.Equal(t, "a-b", GenerateSlug("  --a   b--  "))
}

func TestGenerateSlugEmptyFallsBack(t *testing.T) {
	assert.Equal(t, "post", GenerateSlug(""))
	assert.Equal(t, "post", GenerateSlug("!!!"))
}
