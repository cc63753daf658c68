package mysql

import (
	"cboard/models"
	"context"

	"github.com/pkg/errors"
)

// SelectAccountByIdentity returns any account holding one of the three
// unique identity fields.
func (s *Store) SelectAccountByIdentity(ctx context.Context, userID, email, nickname string) (*models.Account, error) {
	account := new(models.Account)
	res := s.useDB(ctx).
		Where("user_id = ? OR email = ? OR nickname = ?", userID, email, nickname).
		First(account)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectAccountByIdentity")
	}
	return account, nil
}

// SelectAccountConflict looks for another account already using email or nickname.
func (s *Store) SelectAccountConflict(ctx context.Context, id int64, email, nickname string) (*models.Account, error) {
	account := new(models.Account)
	res := s.useDB(ctx).
		Where("id <> ? AND (email = ? OR nickname = ?)", id, email, nickname).
		First(account)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectAccountConflict")
	}
	return account, nil
}

func (s *Store) SelectAccountByUserID(ctx context.Context, userID string) (*models.Account, error) {
	account := new(models.Account)
	res := s.useDB(ctx).First(account, "user_id = ?", userID)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectAccountByUserID")
	}
	return account, nil
}

func (s *Store) SelectAccountInfo(ctx context.Context, id int64) (*models.AccountInfo, error) {
	info := new(models.AccountInfo)
	res := s.useDB(ctx).Model(&models.Account{}).
		Select("id", "nickname", "email").
		Where("id = ?", id).
		Take(info)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectAccountInfo")
	}
	return info, nil
}

func (s *Store) SelectAccountInfos(ctx context.Context, ids []int64) ([]*models.AccountInfo, error) {
	infos := make([]*models.AccountInfo, 0, len(ids))
	if len(ids) == 0 {
		return infos, nil
	}
	res := s.useDB(ctx).Model(&models.Account{}).
		Select("id", "nickname", "email").
		Where("id IN ?", ids).
		Find(&infos)
	return infos, errors.Wrap(res.Error, "mysql: SelectAccountInfos")
}

func (s *Store) InsertAccount(ctx context.Context, account *models.Account) error {
	res := s.useDB(ctx).Create(account)
	return errors.Wrap(res.Error, "mysql: InsertAccount")
}

func (s *Store) UpdateAccountPassword(ctx context.Context, id int64, hash string) error {
	res := s.useDB(ctx).Model(&models.Account{}).Where("id = ?", id).Update("user_pw", hash)
	return errors.Wrap(res.Error, "mysql: UpdateAccountPassword")
}

func (s *Store) UpdateAccountProfile(ctx context.Context, id int64, nickname, email string) (int64, error) {
	res := s.useDB(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{"nickname": nickname, "email": email})
	return res.RowsAffected, errors.Wrap(res.Error, "mysql: UpdateAccountProfile")
}
