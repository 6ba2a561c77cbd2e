package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Sh4dowyy/podoloog-sub000/database"
	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	utils.SetDB(db)
	t.Cleanup(func() { utils.SetDB(nil) })
}

func credentialsRepo() *Repository[models.Credential] {
	return New[models.Credential](Config{PublishColumn: "is_published"})
}

func TestRepositoryCRUD(t *testing.T) {
	setupTestDB(t)
	repo := credentialsRepo()

	item := models.Credential{TitleEt: "Podoloogi diplom", IsPublished: true}
	require.NoError(t, repo.Create(&item))
	assert.NotZero(t, item.ID)

	got, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Podoloogi diplom", got.TitleEt)

	got.TitleRu = "Диплом подолога"
	require.NoError(t, repo.Save(got))
	got, err = repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Диплом подолога", got.TitleRu)

	require.NoError(t, repo.Delete(item.ID))
	_, err = repo.GetByID(item.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestRepositoryListPublishedIsSubsetOfListAll(t *testing.T) {
	setupTestDB(t)
	repo := credentialsRepo()

	require.NoError(t, repo.Create(&models.Credential{TitleEt: "Avalik", IsPublished: true}))
	require.NoError(t, repo.Create(&models.Credential{TitleEt: "Mustand"}))

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	published, err := repo.ListPublished()
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Avalik", published[0].TitleEt)
	assert.True(t, published[0].IsPublished)
}

func TestRepositoryDefaultOrder(t *testing.T) {
	setupTestDB(t)
	repo := New[models.Value](Config{PublishColumn: "is_active", DefaultOrder: "order_index ASC"})

	require.NoError(t, repo.Create(&models.Value{TitleEt: "Teine", TitleRu: "Второй", OrderIndex: 2, IsActive: true}))
	require.NoError(t, repo.Create(&models.Value{TitleEt: "Esimene", TitleRu: "Первый", OrderIndex: 1, IsActive: true}))

	items, err := repo.ListPublished()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Esimene", items[0].TitleEt)
	assert.Equal(t, "Teine", items[1].TitleEt)
}

func TestRepositoryListPage(t *testing.T) {
	setupTestDB(t)
	repo := New[models.GalleryItem](Config{})

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(&models.GalleryItem{
			Title: "Foto", TitleRu: "Фото", ImageURL: "/uploads/gallery/x.png",
		}))
	}

	items, total, err := repo.ListPage(2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 2)

	items, total, err = repo.ListPage(2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 1)
}

func TestRepositoryPartialUpdate(t *testing.T) {
	setupTestDB(t)
	repo := credentialsRepo()

	item := models.Credential{TitleEt: "Sertifikaat", DescriptionEt: "Kirjeldus"}
	require.NoError(t, repo.Create(&item))

	got, err := repo.Update(item.ID, map[string]interface{}{"is_published": true})
	require.NoError(t, err)
	assert.True(t, got.IsPublished)
	// не затронутые поля сохраняются
	assert.Equal(t, "Kirjeldus", got.DescriptionEt)
}

func TestRepositoryDeleteMissingReturnsNotFound(t *testing.T) {
	setupTestDB(t)
	repo := credentialsRepo()
	assert.ErrorIs(t, repo.Delete(999), utils.ErrNotFound)
}

func TestRepositoryWithoutDatabaseIsServiceUnavailable(t *testing.T) {
	utils.SetDB(nil)
	repo := credentialsRepo()

	_, err := repo.ListAll()
	assert.ErrorIs(t, err, utils.ErrServiceUnavailable)
	_, err = repo.GetByID(1)
	assert.ErrorIs(t, err, utils.ErrServiceUnavailable)
	err = repo.Create(&models.Credential{TitleEt: "x"})
	assert.ErrorIs(t, err, utils.ErrServiceUnavailable)
	assert.ErrorIs(t, repo.Delete(1), utils.ErrServiceUnavailable)
}
