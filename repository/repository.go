package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

// Config описывает табличные особенности сущности: имя колонки-флага
// публикации (пустое — флага нет) и порядок выдачи по умолчанию.
type Config struct {
	PublishColumn string
	DefaultOrder  string
}

// Repository — единый CRUD-фасад для всех контентных сущностей.
// Вместо копии list/get/create/update/delete на каждую таблицу — один
// дженерик, параметризованный моделью и Config.
type Repository[T any] struct {
	cfg Config
}

func New[T any](cfg Config) *Repository[T] {
	if cfg.DefaultOrder == "" {
		cfg.DefaultOrder = "created_at DESC"
	}
	return &Repository[T]{cfg: cfg}
}

// db берётся на каждый вызов из глобального холдера: при отсутствующей
// конфигурации БД операции деградируют в ErrServiceUnavailable.
func (r *Repository[T]) db() (*gorm.DB, error) {
	db := utils.GetDB()
	if db == nil {
		return nil, utils.ErrServiceUnavailable
	}
	return db, nil
}

// ListAll возвращает все строки (админка), в порядке по умолчанию.
func (r *Repository[T]) ListAll() ([]T, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	var items []T
	var model T
	if err := db.Model(&model).Order(r.cfg.DefaultOrder).Find(&items).Error; err != nil {
		return nil, utils.ErrBackend
	}
	return items, nil
}

// ListPublished возвращает только строки с выставленным флагом публикации.
// Для сущностей без флага совпадает с ListAll.
func (r *Repository[T]) ListPublished() ([]T, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	var items []T
	var model T
	q := db.Model(&model).Order(r.cfg.DefaultOrder)
	if r.cfg.PublishColumn != "" {
		q = q.Where(r.cfg.PublishColumn+" = ?", true)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, utils.ErrBackend
	}
	return items, nil
}

// ListPage — страница строк с общим количеством (галерея: limit/offset).
func (r *Repository[T]) ListPage(limit, offset int) ([]T, int64, error) {
	db, err := r.db()
	if err != nil {
		return nil, 0, err
	}
	var model T
	var total int64
	if err := db.Model(&model).Count(&total).Error; err != nil {
		return nil, 0, utils.ErrBackend
	}
	q := db.Model(&model).Order(r.cfg.DefaultOrder)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var items []T
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, utils.ErrBackend
	}
	return items, total, nil
}

func (r *Repository[T]) GetByID(id uint) (*T, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	var item T
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, utils.ErrBackend
	}
	return &item, nil
}

// Create сохраняет строку; в item проставляются id и таймстемпы сервера.
func (r *Repository[T]) Create(item *T) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	if err := db.Create(item).Error; err != nil {
		return utils.ErrBackend
	}
	return nil
}

// Save перезаписывает строку целиком (last-write-wins, updated_at ставит GORM).
func (r *Repository[T]) Save(item *T) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	if err := db.Save(item).Error; err != nil {
		return utils.ErrBackend
	}
	return nil
}

// Update применяет частичное обновление и возвращает актуальную строку.
func (r *Repository[T]) Update(id uint, values map[string]interface{}) (*T, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	var model T
	res := db.Model(&model).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return nil, utils.ErrBackend
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetByID(id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(id)
}

func (r *Repository[T]) Delete(id uint) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	var model T
	res := db.Delete(&model, id)
	if res.Error != nil {
		return utils.ErrBackend
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// Count — количество строк в таблице.
func (r *Repository[T]) Count() (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	var model T
	var total int64
	if err := db.Model(&model).Count(&total).Error; err != nil {
		return 0, utils.ErrBackend
	}
	return total, nil
}
