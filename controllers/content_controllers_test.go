package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicePriceListLocalized(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	code, _ := doJSON(t, r, "POST", "/admin/services", map[string]interface{}{
		"title_et":  "Pediküür",
		"title_ru":  "Педикюр",
		"price":     45.0,
		"duration":  "60 min",
		"published": true,
	}, token, nil)
	require.Equal(t, 201, code)

	code, resp := doJSON(t, r, "GET", "/services", nil, "", map[string]string{"Lang": "ru"})
	require.Equal(t, 200, code)
	items := resp["result"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Педикюр", item["title"])
	assert.Equal(t, 45.0, item["price"])
	assert.Equal(t, "EUR", item["currency"])
	assert.Equal(t, "60 min", item["duration"])
}

func TestServiceValidation(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	code, resp := doJSON(t, r, "POST", "/admin/services", map[string]interface{}{
		"price": 10.0,
	}, token, nil)
	assert.Equal(t, 400, code)
	assert.Equal(t, "title is required", resp["error"])

	code, resp = doJSON(t, r, "POST", "/admin/services", map[string]interface{}{
		"title_et": "Pediküür",
		"price":    -1.0,
	}, token, nil)
	assert.Equal(t, 400, code)
	assert.Equal(t, "price must be >= 0", resp["error"])
}

func TestValuesOrderedAndActiveOnly(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	inactive := false
	payloads := []map[string]interface{}{
		{"title_et": "Teine", "title_ru": "Второй", "order_index": 2},
		{"title_et": "Esimene", "title_ru": "Первый", "order_index": 1},
		{"title_et": "Peidetud", "title_ru": "Скрытый", "order_index": 0, "is_active": inactive},
	}
	for _, p := range payloads {
		code, _ := doJSON(t, r, "POST", "/admin/values", p, token, nil)
		require.Equal(t, 201, code)
	}

	code, resp := doJSON(t, r, "GET", "/values", nil, "", map[string]string{"Lang": "et"})
	require.Equal(t, 200, code)
	items := resp["result"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, "Esimene", items[0].(map[string]interface{})["title"])
	assert.Equal(t, "Teine", items[1].(map[string]interface{})["title"])
}

func TestValueRequiresBothTitles(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	code, _ := doJSON(t, r, "POST", "/admin/values", map[string]interface{}{
		"title_et": "Hoolivus",
	}, token, nil)
	assert.Equal(t, 400, code)
}

func TestBiomechanicsCategoryFilter(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	for _, p := range []map[string]interface{}{
		{"category": "exercise", "title_et": "Harjutus", "is_published": true},
		{"category": "hygiene", "title_et": "Hügieen", "is_published": true},
		{"category": "exercise", "title_et": "Mustand"},
	} {
		code, _ := doJSON(t, r, "POST", "/admin/biomechanics", p, token, nil)
		require.Equal(t, 201, code)
	}

	code, resp := doJSON(t, r, "GET", "/biomechanics?category=exercise", nil, "", nil)
	require.Equal(t, 200, code)
	items := resp["result"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Harjutus", items[0].(map[string]interface{})["title"])

	code, resp = doJSON(t, r, "GET", "/biomechanics", nil, "", nil)
	require.Equal(t, 200, code)
	assert.Len(t, resp["result"].([]interface{}), 2)

	code, _ = doJSON(t, r, "GET", "/biomechanics?category=dance", nil, "", nil)
	assert.Equal(t, 400, code)
}

func TestBiomechanicsRejectsUnknownCategory(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	code, _ := doJSON(t, r, "POST", "/admin/biomechanics", map[string]interface{}{
		"category": "dance",
		"title_et": "Tants",
	}, token, nil)
	assert.Equal(t, 400, code)
}

func TestBrandsGroupPublishedProducts(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	code, resp := doJSON(t, r, "POST", "/admin/brands", map[string]interface{}{
		"name_et": "Gehwol", "published": true,
	}, token, nil)
	require.Equal(t, 201, code)
	brandID := resp["result"].(map[string]interface{})["ID"].(float64)

	code, resp = doJSON(t, r, "POST", "/admin/brands", map[string]interface{}{
		"name_et": "Peidetud bränd",
	}, token, nil)
	require.Equal(t, 201, code)
	hiddenID := resp["result"].(map[string]interface{})["ID"].(float64)

	for _, p := range []map[string]interface{}{
		{"brand_id": brandID, "name_et": "Kreem", "category": "cream", "published": true},
		{"brand_id": brandID, "name_et": "Mustand", "category": "tool"},
		{"brand_id": hiddenID, "name_et": "Orb", "category": "cream", "published": true},
	} {
		code, _ = doJSON(t, r, "POST", "/admin/products", p, token, nil)
		require.Equal(t, 201, code)
	}

	code, resp = doJSON(t, r, "GET", "/brands", nil, "", nil)
	require.Equal(t, 200, code)
	brands := resp["result"].([]interface{})
	// неопубликованный бренд скрыт вместе со своими товарами
	require.Len(t, brands, 1)
	brand := brands[0].(map[string]interface{})
	assert.Equal(t, "Gehwol", brand["name"])
	products := brand["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "Kreem", products[0].(map[string]interface{})["name"])
}

func TestProductsCategoryFilter(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	code, resp := doJSON(t, r, "POST", "/admin/brands", map[string]interface{}{
		"name_et": "Gehwol", "published": true,
	}, token, nil)
	require.Equal(t, 201, code)
	brandID := resp["result"].(map[string]interface{})["ID"].(float64)

	for _, p := range []map[string]interface{}{
		{"brand_id": brandID, "name_et": "Kreem", "category": "cream", "published": true},
		{"brand_id": brandID, "name_et": "Tangid", "category": "tool", "published": true},
	} {
		code, _ = doJSON(t, r, "POST", "/admin/products", p, token, nil)
		require.Equal(t, 201, code)
	}

	code, resp = doJSON(t, r, "GET", "/products?category=cream", nil, "", nil)
	require.Equal(t, 200, code)
	items := resp["result"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Kreem", items[0].(map[string]interface{})["name"])

	code, _ = doJSON(t, r, "GET", "/products?category=socks", nil, "", nil)
	assert.Equal(t, 400, code)
}

func TestProductRequiresExistingBrand(t *testing.T) {
	r := setupAPI(t)
	token := adminToken(t)

	code, _ := doJSON(t, r, "POST", "/admin/products", map[string]interface{}{
		"name_et": "Kreem", "category": "cream", "brand_id": 999,
	}, token, nil)
	assert.Equal(t, 400, code)

	code, _ = doJSON(t, r, "POST", "/admin/products", map[string]interface{}{
		"name_et": "Kreem", "category": "cream",
	}, token, nil)
	assert.Equal(t, 400, code)
}
