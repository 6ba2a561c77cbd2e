package controllers_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicReviewIsPublishedImmediately(t *testing.T) {
	r := setupAPI(t)

	code, resp := doJSON(t, r, "POST", "/api/reviews/public", map[string]interface{}{
		"author_name": "Mari",
		"content_et":  "Väga hea teenus",
		"rating":      5,
	}, "", nil)
	require.Equal(t, 201, code)
	require.Equal(t, true, resp["success"])

	result := resp["result"].(map[string]interface{})
	assert.NotZero(t, result["ID"])
	assert.Equal(t, true, result["published"])
	assert.Equal(t, "Mari", result["author_name"])

	// отзыв сразу виден в публичном списке
	code, resp = doJSON(t, r, "GET", "/reviews", nil, "", map[string]string{"Lang": "et"})
	require.Equal(t, 200, code)
	items := resp["result"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Väga hea teenus", item["content"])
	assert.Equal(t, float64(5), item["rating"])
}

func TestPublicReviewRatingDefaultsToFive(t *testing.T) {
	r := setupAPI(t)

	code, resp := doJSON(t, r, "POST", "/api/reviews/public", map[string]interface{}{
		"author_name": "Anna",
		"content_ru":  "Отличный специалист",
	}, "", nil)
	require.Equal(t, 201, code)
	result := resp["result"].(map[string]interface{})
	assert.Equal(t, float64(5), result["rating"])
}

func TestPublicReviewValidation(t *testing.T) {
	r := setupAPI(t)

	code, _ := doJSON(t, r, "POST", "/api/reviews/public", map[string]interface{}{
		"content_et": "tekst",
	}, "", nil)
	assert.Equal(t, 400, code, "author_name required")

	code, _ = doJSON(t, r, "POST", "/api/reviews/public", map[string]interface{}{
		"author_name": "Mari",
	}, "", nil)
	assert.Equal(t, 400, code, "content required")

	code, _ = doJSON(t, r, "POST", "/api/reviews/public", map[string]interface{}{
		"author_name": "Mari",
		"content_et":  "tekst",
		"rating":      6,
	}, "", nil)
	assert.Equal(t, 400, code, "rating out of range")

	code, _ = doJSON(t, r, "POST", "/api/reviews/public", map[string]interface{}{
		"author_name": "Mari",
		"content_et":  strings.Repeat("ä", 1001),
	}, "", nil)
	assert.Equal(t, 400, code, "content too long")
}

func TestPublicReviewStripsHTML(t *testing.T) {
	r := setupAPI(t)

	code, resp := doJSON(t, r, "POST", "/api/reviews/public", map[string]interface{}{
		"author_name": "Mari",
		"content_et":  "<script>alert(1)</script>tere",
	}, "", nil)
	require.Equal(t, 201, code)
	result := resp["result"].(map[string]interface{})
	assert.Equal(t, "tere", result["content_et"])
}

func TestReviewLocalizedFallback(t *testing.T) {
	r := setupAPI(t)

	code, _ := doJSON(t, r, "POST", "/api/reviews/public", map[string]interface{}{
		"author_name": "Anna",
		"content_ru":  "Только по-русски",
	}, "", nil)
	require.Equal(t, 201, code)

	// эстонской версии нет — отдаём русскую
	code, resp := doJSON(t, r, "GET", "/reviews", nil, "", map[string]string{"Lang": "et"})
	require.Equal(t, 200, code)
	items := resp["result"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Только по-русски", items[0].(map[string]interface{})["content"])
}

func TestAdminReviewModeration(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	code, resp := doJSON(t, r, "POST", "/api/reviews/public", map[string]interface{}{
		"author_name": "Mari",
		"content_et":  "Hea",
	}, "", nil)
	require.Equal(t, 201, code)
	id := resp["result"].(map[string]interface{})["ID"].(float64)

	// снятие с публикации из админки
	code, _ = doJSON(t, r, "PUT", "/admin/reviews/"+itoa(id), map[string]interface{}{
		"author_name": "Mari",
		"content_et":  "Hea",
		"published":   false,
	}, token, nil)
	require.Equal(t, 200, code)

	code, resp = doJSON(t, r, "GET", "/reviews", nil, "", nil)
	require.Equal(t, 200, code)
	assert.Empty(t, resp["result"].([]interface{}))

	// в админском списке отзыв остаётся
	code, resp = doJSON(t, r, "GET", "/admin/reviews", nil, token, nil)
	require.Equal(t, 200, code)
	assert.Len(t, resp["result"].([]interface{}), 1)
}
