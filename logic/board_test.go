package logic

import (
	cboard "cboard/errors"
	"cboard/models"
	"context"
	"testing"

	"github.com/pkg/errors"
)

func TestCreateCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.boards.ListCategories(ctx, 10); !errors.Is(err, cboard.ErrNoCategories) {
		t.Errorf("ListCategories(empty) error = %v, want ErrNoCategories", err)
	}

	f.category(t, "free")

	tests := []struct {
		name string
		p    models.ParamCategoryCreate
		want error
	}{
		{"duplicate slug", models.ParamCategoryCreate{Title: "Other", Desc: "d", Slug: "free"}, cboard.ErrCategoryExist},
		{"duplicate title", models.ParamCategoryCreate{Title: "Title free", Desc: "d", Slug: "other"}, cboard.ErrCategoryExist},
		{"bad slug", models.ParamCategoryCreate{Title: "Q&A", Desc: "d", Slug: "Q&A"}, cboard.ErrInvalidParam},
		{"no description", models.ParamCategoryCreate{Title: "Empty", Desc: " ", Slug: "empty"}, cboard.ErrInvalidParam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.boards.CreateCategory(ctx, &tt.p); !errors.Is(err, tt.want) {
				t.Errorf("CreateCategory() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestListCategoriesPreview(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	f.category(t, "free")
	f.category(t, "notice")
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		f.write(t, alice.ID, "free", "p")
	}
	deleted := f.write(t, alice.ID, "free", "deleted")
	if err := f.posts.Delete(ctx, alice.ID, deleted.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	list, err := f.boards.ListCategories(ctx, 10)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(list) != 2 || list[0].Slug != "free" || list[1].Slug != "notice" {
		t.Fatalf("ListCategories() = %+v", list)
	}
	free := list[0].Posts
	if len(free) != 4 || free[0].CategoryOrder != 6 || free[3].CategoryOrder != 3 {
		t.Errorf("free preview = %d posts", len(free))
	}
	if list[1].Posts == nil || len(list[1].Posts) != 0 {
		t.Errorf("notice preview = %v, want empty slice", list[1].Posts)
	}

	if list, _ := f.boards.ListCategories(ctx, 1); len(list) != 1 {
		t.Errorf("ListCategories(1) returned %d", len(list))
	}
}

func TestGetCategoryInfo(t *testing.T) {
	f := newFixture(t)
	f.category(t, "free")
	ctx := context.Background()

	info, err := f.boards.GetCategoryInfo(ctx, "free")
	if err != nil || info.Title != "Title free" {
		t.Fatalf("GetCategoryInfo() = %+v, %v", info, err)
	}
	if _, err := f.boards.GetCategoryInfo(ctx, "nope"); !errors.Is(err, cboard.ErrNoSuchCategory) {
		t.Errorf("GetCategoryInfo(unknown) error = %v, want ErrNoSuchCategory", err)
	}
}
