package mysql

import (
	"cboard/models"
	"context"

	"github.com/pkg/errors"
)

func voteModel(voteType models.VoteType, postID, userID int64) any {
	if voteType == models.VoteDislike {
		return &models.PostDislike{PostID: postID, UserID: userID}
	}
	return &models.PostLike{PostID: postID, UserID: userID}
}

func (s *Store) CheckVoteIfExist(ctx context.Context, voteType models.VoteType, postID, userID int64) (bool, error) {
	var count int64
	res := s.useDB(ctx).Model(voteModel(voteType, 0, 0)).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "mysql: CheckVoteIfExist")
	}
	return count > 0, nil
}

func (s *Store) InsertVote(ctx context.Context, voteType models.VoteType, postID, userID int64) error {
	res := s.useDB(ctx).Create(voteModel(voteType, postID, userID))
	return errors.Wrap(res.Error, "mysql: InsertVote")
}
