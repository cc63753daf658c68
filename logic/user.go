package logic

import (
	"cboard/dao/mysql"
	cboard "cboard/errors"
	"cboard/models"
	"context"

	"github.com/pkg/errors"
)

// UserLookup resolves account ids to display identities.
type UserLookup struct {
	store *mysql.Store
}

func NewUserLookup(store *mysql.Store) *UserLookup {
	return &UserLookup{store: store}
}

func (l *UserLookup) Resolve(ctx context.Context, id int64) (*models.AccountInfo, error) {
	info, err := l.store.SelectAccountInfo(ctx, id)
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, cboard.ErrUserNotExist
		}
		return nil, errors.Wrap(err, "logic:Resolve: SelectAccountInfo")
	}
	return info, nil
}

// ResolveMany returns the identities that still exist; missing ids are
// simply absent from the map.
func (l *UserLookup) ResolveMany(ctx context.Context, ids []int64) (map[int64]*models.AccountInfo, error) {
	infos, err := l.store.SelectAccountInfos(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, errors.Wrap(err, "logic:ResolveMany: SelectAccountInfos")
	}
	res := make(map[int64]*models.AccountInfo, len(infos))
	for _, info := range infos {
		res[info.ID] = info
	}
	return res, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
