package logic

import (
	"cboard/dao/mysql"
	"cboard/internal/testutil"
	"cboard/internal/utils"
	"cboard/models"
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store    *mysql.Store
	accounts *AccountService
	boards   *BoardService
	posts    *PostService
	comments *CommentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := testutil.NewStore(t)
	sanitizer := utils.NewSanitizer()
	lookup := NewUserLookup(store)
	tokens := utils.NewTokenManager("test-secret", "cboard", time.Hour)
	hasher := utils.NewPasswordHasher("salt", bcrypt.MinCost)

	return &fixture{
		store:    store,
		accounts: NewAccountService(store, tokens, hasher, nil),
		boards:   NewBoardService(store, 4),
		posts:    NewPostService(store, lookup, sanitizer, 10),
		comments: NewCommentService(store, lookup, sanitizer),
	}
}

func (f *fixture) join(t *testing.T, id string) *models.AccountInfo {
	t.Helper()
	ctx := context.Background()
	p := &models.ParamJoin{ID: id, Password: "pw", Email: id + "@x.com", Nickname: "nick-" + id}
	if err := f.accounts.Register(ctx, p); err != nil {
		t.Fatalf("Register(%s): %v", id, err)
	}
	info, _, err := f.accounts.Login(ctx, &models.ParamLogin{ID: id, Password: "pw"})
	if err != nil {
		t.Fatalf("Login(%s): %v", id, err)
	}
	return info
}

func (f *fixture) category(t *testing.T, slug string) {
	t.Helper()
	_, err := f.boards.CreateCategory(context.Background(), &models.ParamCategoryCreate{
		Title: "Title " + slug, Desc: "about " + slug, Slug: slug,
	})
	if err != nil {
		t.Fatalf("CreateCategory(%s): %v", slug, err)
	}
}

func (f *fixture) write(t *testing.T, writer int64, category, title string) *models.Post {
	t.Helper()
	post, err := f.posts.Create(context.Background(), &models.ParamPostWrite{
		Title: title, Content: "<p>" + title + "</p>", Category: category, Writer: writer,
	})
	if err != nil {
		t.Fatalf("Create(%s): %v", title, err)
	}
	return post
}
