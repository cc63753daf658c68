package logic

import (
	"cboard/dao/mysql"
	cboard "cboard/errors"
	"cboard/internal/utils"
	"cboard/logger"
	"cboard/models"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TokenDenylist revokes session tokens before they expire.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type AccountService struct {
	store    *mysql.Store
	tokens   *utils.TokenManager
	hasher   *utils.PasswordHasher
	denylist TokenDenylist // nil when revocation is disabled
}

func NewAccountService(store *mysql.Store, tokens *utils.TokenManager, hasher *utils.PasswordHasher, denylist TokenDenylist) *AccountService {
	return &AccountService{store: store, tokens: tokens, hasher: hasher, denylist: denylist}
}

func (s *AccountService) Register(ctx context.Context, p *models.ParamJoin) error {
	userID := strings.TrimSpace(p.ID)
	email := strings.TrimSpace(p.Email)
	nickname := strings.TrimSpace(p.Nickname)
	if userID == "" || p.Password == "" || nickname == "" || !utils.ValidateEmail(email) {
		return cboard.ErrInvalidParam
	}

	// one query covers all three identity fields
	_, err := s.store.SelectAccountByIdentity(ctx, userID, email, nickname)
	if err == nil {
		return cboard.ErrUserExist
	}
	if !mysql.IsNotFound(err) {
		return errors.Wrap(err, "logic:Register: SelectAccountByIdentity")
	}

	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		return errors.Wrap(err, "logic:Register: Hash")
	}

	account := &models.Account{
		UserID:   userID,
		Password: hash,
		Email:    email,
		Nickname: nickname,
	}
	if err := s.store.InsertAccount(ctx, account); err != nil {
		// lost a race against a concurrent join
		if mysql.IsDuplicateKey(err) {
			return cboard.ErrUserExist
		}
		return errors.Wrap(err, "logic:Register: InsertAccount")
	}
	return nil
}

// Login returns the caller's identity and a fresh session token. Unknown
// ids and wrong passwords are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, p *models.ParamLogin) (*models.AccountInfo, string, error) {
	account, err := s.store.SelectAccountByUserID(ctx, strings.TrimSpace(p.ID))
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, "", cboard.ErrWrongPassword
		}
		return nil, "", errors.Wrap(err, "logic:Login: SelectAccountByUserID")
	}

	ok, needsRehash := s.hasher.Verify(account.Password, p.Password)
	if !ok {
		return nil, "", cboard.ErrWrongPassword
	}
	if needsRehash {
		s.upgradePassword(ctx, account.ID, p.Password)
	}

	info := &models.AccountInfo{ID: account.ID, Nickname: account.Nickname, Email: account.Email}
	token, _, err := s.tokens.GenToken(info)
	if err != nil {
		return nil, "", errors.Wrap(err, "logic:Login: GenToken")
	}
	return info, token, nil
}

func (s *AccountService) IssueToken(info *models.AccountInfo) (string, error) {
	token, _, err := s.tokens.GenToken(info)
	return token, errors.Wrap(err, "logic:IssueToken: GenToken")
}

// upgradePassword replaces a legacy digest; failure only costs another
// upgrade attempt on the next login.
func (s *AccountService) upgradePassword(ctx context.Context, id int64, password string) {
	hash, err := s.hasher.Hash(password)
	if err == nil {
		err = s.store.UpdateAccountPassword(ctx, id, hash)
	}
	if err != nil {
		logger.Warnf("logic:Login: upgrade legacy password of account %d: %v", id, err)
		return
	}
	logger.Infof("upgraded legacy password hash of account %d", id)
}

// Logout revokes the session token when a denylist is configured. The
// cookie itself is cleared by the caller.
func (s *AccountService) Logout(ctx context.Context, claims *utils.SessionClaims) error {
	if s.denylist == nil || claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	err := s.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	return errors.Wrap(err, "logic:Logout: Revoke")
}

func (s *AccountService) GetProfile(ctx context.Context, id int64) (*models.AccountInfo, error) {
	info, err := s.store.SelectAccountInfo(ctx, id)
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, cboard.ErrUserNotExist
		}
		return nil, errors.Wrap(err, "logic:GetProfile: SelectAccountInfo")
	}
	return info, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, id int64, p *models.ParamProfileUpdate) (*models.AccountInfo, error) {
	email := strings.TrimSpace(p.Email)
	nickname := strings.TrimSpace(p.Nickname)
	if nickname == "" || !utils.ValidateEmail(email) {
		return nil, cboard.ErrInvalidParam
	}

	_, err := s.store.SelectAccountConflict(ctx, id, email, nickname)
	if err == nil {
		return nil, cboard.ErrUserExist
	}
	if !mysql.IsNotFound(err) {
		return nil, errors.Wrap(err, "logic:UpdateProfile: SelectAccountConflict")
	}

	rows, err := s.store.UpdateAccountProfile(ctx, id, nickname, email)
	if err != nil {
		if mysql.IsDuplicateKey(err) {
			return nil, cboard.ErrUserExist
		}
		return nil, errors.Wrap(err, "logic:UpdateProfile: UpdateAccountProfile")
	}
	if rows == 0 {
		return nil, cboard.ErrUserNotExist
	}
	return &models.AccountInfo{ID: id, Nickname: nickname, Email: email}, nil
}
