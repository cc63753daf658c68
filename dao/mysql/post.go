package mysql

import (
	"cboard/models"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (s *Store) InsertPost(ctx context.Context, post *models.Post) error {
	res := s.useDB(ctx).Create(post)
	return errors.Wrap(res.Error, "mysql: InsertPost")
}

// SelectNextCategoryOrder returns max(category_order)+1 for the category, 1 when empty.
func (s *Store) SelectNextCategoryOrder(ctx context.Context, category string) (int64, error) {
	var next int64
	res := s.useDB(ctx).Model(&models.Post{}).
		Select("COALESCE(MAX(category_order), 0) + 1").
		Where("category = ?", category).
		Scan(&next)
	return next, errors.Wrap(res.Error, "mysql: SelectNextCategoryOrder")
}

// IncrPostViews bumps the view counter of a visible post and reports how
// many rows matched.
func (s *Store) IncrPostViews(ctx context.Context, postID int64) (int64, error) {
	res := s.useDB(ctx).Model(&models.Post{}).
		Where("id = ? AND status = ?", postID, models.StatusVisible).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	return res.RowsAffected, errors.Wrap(res.Error, "mysql: IncrPostViews")
}

// IncrPostCounter bumps "likes" or "dislikes" of a visible post.
func (s *Store) IncrPostCounter(ctx context.Context, postID int64, column string) (int64, error) {
	res := s.useDB(ctx).Model(&models.Post{}).
		Where("id = ? AND status = ?", postID, models.StatusVisible).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	return res.RowsAffected, errors.Wrap(res.Error, "mysql: IncrPostCounter")
}

func (s *Store) SelectVisiblePost(ctx context.Context, postID int64) (*models.Post, error) {
	post := new(models.Post)
	res := s.useDB(ctx).First(post, "id = ? AND status = ?", postID, models.StatusVisible)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectVisiblePost")
	}
	return post, nil
}

// SelectPostByID ignores the status flag; soft-deleted rows stay addressable.
func (s *Store) SelectPostByID(ctx context.Context, postID int64) (*models.Post, error) {
	post := new(models.Post)
	res := s.useDB(ctx).First(post, "id = ?", postID)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectPostByID")
	}
	return post, nil
}

func (s *Store) UpdatePostContent(ctx context.Context, postID int64, title, content string) (int64, error) {
	res := s.useDB(ctx).Model(&models.Post{}).
		Where("id = ? AND status = ?", postID, models.StatusVisible).
		Updates(map[string]any{"title": title, "content": content})
	return res.RowsAffected, errors.Wrap(res.Error, "mysql: UpdatePostContent")
}

func (s *Store) UpdatePostStatus(ctx context.Context, postID int64, status int8) (int64, error) {
	res := s.useDB(ctx).Model(&models.Post{}).
		Where("id = ?", postID).
		Update("status", status)
	return res.RowsAffected, errors.Wrap(res.Error, "mysql: UpdatePostStatus")
}

// SelectPostsByCategory pages visible posts, newest category_order first.
func (s *Store) SelectPostsByCategory(ctx context.Context, category string, offset, limit int) ([]*models.Post, error) {
	list := make([]*models.Post, 0, limit)
	res := s.useDB(ctx).
		Where("category = ? AND status = ?", category, models.StatusVisible).
		Order("category_order DESC").
		Offset(offset).
		Limit(limit).
		Find(&list)
	return list, errors.Wrap(res.Error, "mysql: SelectPostsByCategory")
}

func (s *Store) CountPostsByCategory(ctx context.Context, category string) (int64, error) {
	var total int64
	res := s.useDB(ctx).Model(&models.Post{}).
		Where("category = ? AND status = ?", category, models.StatusVisible).
		Count(&total)
	return total, errors.Wrap(res.Error, "mysql: CountPostsByCategory")
}

func (s *Store) SelectRecentPostsByWriter(ctx context.Context, writerID int64, limit int) ([]*models.RecentPost, error) {
	list := make([]*models.RecentPost, 0, limit)
	res := s.useDB(ctx).Table("board AS b").
		Select("b.id, b.title, b.content, b.written_time, b.category, bc.title AS category_title").
		Joins("LEFT JOIN board_category AS bc ON b.category = bc.slug").
		Where("b.writer_id = ? AND b.status = ?", writerID, models.StatusVisible).
		Order("b.written_time DESC, b.id DESC").
		Limit(limit).
		Scan(&list)
	return list, errors.Wrap(res.Error, "mysql: SelectRecentPostsByWriter")
}
