package services

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

// таблицы и колонки, в которых лежат ссылки на загруженные изображения
var imageColumns = []struct {
	table  string
	column string
}{
	{"credentials", "image_url"},
	{"blog_posts", "image_url"},
	{"services", "image_url"},
	{"brand_products", "image_url"},
	{"biomechanics_items", "image_url"},
	{"gallery_items", "image_url"},
}

// StartUploadSweepCron запускает ночную (03:00) чистку uploads/ от файлов,
// на которые не ссылается ни одна строка контента. Замена картинки удаляет
// старый файл best-effort, свип добирает то, что при этом потерялось.
func StartUploadSweepCron(db *gorm.DB) {
	c := cron.New()
	_, err := c.AddFunc("0 3 * * *", func() {
		if err := SweepUploads(db); err != nil {
			utils.LogError(err, "upload sweep")
		}
	})
	if err != nil {
		utils.LogError(err, "upload sweep cron")
		return
	}
	c.Start()
	log.Println("Upload sweep cron started (daily at 03:00)")
}

// SweepUploads удаляет из uploads/ файлы старше суток, не упомянутые ни в
// одной контентной таблице. Свежие файлы не трогаем: ссылка может ещё не
// быть сохранена (форма открыта).
func SweepUploads(db *gorm.DB) error {
	referenced, err := referencedImageURLs(db)
	if err != nil {
		return err
	}
	cutoff := time.Now().Add(-24 * time.Hour)

	return filepath.Walk(utils.UploadRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || info.ModTime().After(cutoff) {
			return nil
		}
		rel, err := filepath.Rel(utils.UploadRoot, path)
		if err != nil {
			return nil
		}
		publicURL := "/uploads/" + filepath.ToSlash(rel)
		if referenced[publicURL] {
			return nil
		}
		if err := os.Remove(path); err != nil {
			utils.LogError(err, "sweep remove "+path)
			return nil
		}
		log.Printf("Removed orphaned upload: %s", publicURL)
		return nil
	})
}

func referencedImageURLs(db *gorm.DB) (map[string]bool, error) {
	referenced := make(map[string]bool)
	for _, ic := range imageColumns {
		var urls []string
		if err := db.Table(ic.table).
			Where(ic.column+" IS NOT NULL AND "+ic.column+" <> ''").
			Pluck(ic.column, &urls).Error; err != nil {
			return nil, err
		}
		for _, u := range urls {
			referenced[u] = true
		}
	}
	return referenced, nil
}
