package mysql

import (
	"cboard/models"
	"context"

	"github.com/pkg/errors"
)

func (s *Store) InsertComment(ctx context.Context, comment *models.Comment) error {
	res := s.useDB(ctx).Create(comment)
	return errors.Wrap(res.Error, "mysql: InsertComment")
}

func (s *Store) SelectVisibleComment(ctx context.Context, commentID int64) (*models.Comment, error) {
	comment := new(models.Comment)
	res := s.useDB(ctx).First(comment, "id = ? AND status = ?", commentID, models.StatusVisible)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectVisibleComment")
	}
	return comment, nil
}

// SelectCommentsByPost returns the visible comments of a post in creation
// order; id breaks ties so a parent always precedes its replies.
func (s *Store) SelectCommentsByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	list := make([]*models.Comment, 0)
	res := s.useDB(ctx).
		Where("post_id = ? AND status = ?", postID, models.StatusVisible).
		Order("created_at ASC, id ASC").
		Find(&list)
	return list, errors.Wrap(res.Error, "mysql: SelectCommentsByPost")
}

func (s *Store) UpdateCommentContent(ctx context.Context, commentID int64, content string) (int64, error) {
	res := s.useDB(ctx).Model(&models.Comment{}).
		Where("id = ? AND status = ?", commentID, models.StatusVisible).
		Update("content", content)
	return res.RowsAffected, errors.Wrap(res.Error, "mysql: UpdateCommentContent")
}

func (s *Store) UpdateCommentStatus(ctx context.Context, commentID int64, status int8) (int64, error) {
	res := s.useDB(ctx).Model(&models.Comment{}).
		Where("id = ? AND status <> ?", commentID, status).
		Update("status", status)
	return res.RowsAffected, errors.Wrap(res.Error, "mysql: UpdateCommentStatus")
}
