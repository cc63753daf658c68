package mysql

import (
	"cboard/models"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

func (s *Store) SelectCategoryByTitleOrSlug(ctx context.Context, title, slug string) (*models.BoardCategory, error) {
	category := new(models.BoardCategory)
	res := s.useDB(ctx).Where("title = ? OR slug = ?", title, slug).First(category)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectCategoryByTitleOrSlug")
	}
	return category, nil
}

func (s *Store) SelectCategoryBySlug(ctx context.Context, slug string) (*models.BoardCategory, error) {
	category := new(models.BoardCategory)
	res := s.useDB(ctx).First(category, "slug = ?", slug)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectCategoryBySlug")
	}
	return category, nil
}

// LockCategory takes a row lock on the category for the rest of the
// transaction, serializing post inserts into the same category.
func (s *Store) LockCategory(ctx context.Context, slug string) (*models.BoardCategory, error) {
	category := new(models.BoardCategory)
	res := s.useDB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(category, "slug = ?", slug)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: LockCategory")
	}
	return category, nil
}

func (s *Store) SelectCategoryList(ctx context.Context, limit int) ([]*models.BoardCategory, error) {
	list := make([]*models.BoardCategory, 0, limit)
	res := s.useDB(ctx).Order("id ASC").Limit(limit).Find(&list)
	return list, errors.Wrap(res.Error, "mysql: SelectCategoryList")
}

func (s *Store) InsertCategory(ctx context.Context, category *models.BoardCategory) error {
	res := s.useDB(ctx).Create(category)
	return errors.Wrap(res.Error, "mysql: InsertCategory")
}
