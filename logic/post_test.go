package logic

import (
	cboard "cboard/errors"
	"cboard/models"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func TestCreateAssignsCategoryOrder(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	f.category(t, "free")
	f.category(t, "notice")

	const n = 5
	for i := 1; i <= n; i++ {
		post := f.write(t, alice.ID, "free", "post")
		if post.CategoryOrder != int64(i) {
			t.Fatalf("post %d: category_order = %d, want %d", i, post.CategoryOrder, i)
		}
	}

	// sequences are per category
	if post := f.write(t, alice.ID, "notice", "first"); post.CategoryOrder != 1 {
		t.Errorf("first notice: category_order = %d, want 1", post.CategoryOrder)
	}
}

func TestCreateConcurrentWriters(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	f.category(t, "free")

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.posts.Create(context.Background(), &models.ParamPostWrite{
				Title: "t", Content: "c", Category: "free", Writer: alice.ID,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, err := f.posts.ListByCategory(context.Background(), "free", 1)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	seen := make(map[int64]bool)
	for _, item := range page.Array {
		seen[item.CategoryOrder] = true
	}
	for i := int64(1); i <= n; i++ {
		if !seen[i] {
			t.Errorf("category_order %d missing; got %v", i, seen)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	f.category(t, "free")
	ctx := context.Background()

	_, err := f.posts.Create(ctx, &models.ParamPostWrite{Title: "t", Content: "c", Category: "nope", Writer: alice.ID})
	if !errors.Is(err, cboard.ErrNoSuchCategory) {
		t.Errorf("Create(unknown category) error = %v, want ErrNoSuchCategory", err)
	}

	// nothing survives sanitizing
	_, err = f.posts.Create(ctx, &models.ParamPostWrite{Title: "t", Content: "<script>x</script>", Category: "free", Writer: alice.ID})
	if !errors.Is(err, cboard.ErrInvalidParam) {
		t.Errorf("Create(empty content) error = %v, want ErrInvalidParam", err)
	}

	_, err = f.posts.Create(ctx, &models.ParamPostWrite{Title: "t", Content: "c", Category: "free", Writer: 9999})
	if !errors.Is(err, cboard.ErrNoSuchWriter) {
		t.Errorf("Create(unknown writer) error = %v, want ErrNoSuchWriter", err)
	}
}

func TestReadSanitizedAndCounted(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	f.category(t, "free")
	ctx := context.Background()

	post, err := f.posts.Create(ctx, &models.ParamPostWrite{
		Title:    "xss",
		Content:  `<p>hello</p><script>alert("x")</script>`,
		Category: "free",
		Writer:   alice.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	item, err := f.posts.Read(ctx, post.ID)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if strings.Contains(item.Content, "<script") || !strings.Contains(item.Content, "<p>hello</p>") {
		t.Errorf("content = %q", item.Content)
	}
	if item.Writer != alice.Nickname || item.Views != 1 {
		t.Errorf("Read() = writer %q views %d", item.Writer, item.Views)
	}

	item, _ = f.posts.Read(ctx, post.ID)
	if item.Views != 2 {
		t.Errorf("views after second read = %d, want 2", item.Views)
	}

	if _, err := f.posts.Read(ctx, 9999); !errors.Is(err, cboard.ErrNoSuchPost) {
		t.Errorf("Read(missing) error = %v, want ErrNoSuchPost", err)
	}
}

func TestSoftDelete(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	bob := f.join(t, "bob")
	f.category(t, "free")
	ctx := context.Background()

	keep := f.write(t, alice.ID, "free", "keep")
	gone := f.write(t, alice.ID, "free", "gone")

	if err := f.posts.Delete(ctx, bob.ID, gone.ID); !errors.Is(err, cboard.ErrForbidden) {
		t.Fatalf("Delete(other writer) error = %v, want ErrForbidden", err)
	}
	if err := f.posts.Delete(ctx, alice.ID, gone.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := f.posts.Delete(ctx, alice.ID, gone.ID); err != nil {
		t.Errorf("second Delete: %v", err)
	}
	if err := f.posts.Delete(ctx, alice.ID, 9999); !errors.Is(err, cboard.ErrNoSuchPost) {
		t.Errorf("Delete(missing) error = %v, want ErrNoSuchPost", err)
	}

	page, err := f.posts.ListByCategory(ctx, "free", 1)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if page.Total != 1 || len(page.Array) != 1 || page.Array[0].ID != keep.ID {
		t.Errorf("page after delete = total %d, %d items", page.Total, len(page.Array))
	}

	if _, err := f.posts.Read(ctx, gone.ID); !errors.Is(err, cboard.ErrNoSuchPost) {
		t.Errorf("Read(deleted) error = %v, want ErrNoSuchPost", err)
	}
	// deleted rows stay addressable and were not counted
	row, err := f.store.SelectPostByID(ctx, gone.ID)
	if err != nil {
		t.Fatalf("SelectPostByID: %v", err)
	}
	if row.Views != 0 || row.Status != models.StatusDeleted {
		t.Errorf("deleted row = views %d status %d", row.Views, row.Status)
	}

	err = f.posts.Update(ctx, alice.ID, &models.ParamPostUpdate{ID: gone.ID, Title: "t", Content: "c"})
	if !errors.Is(err, cboard.ErrNoSuchPost) {
		t.Errorf("Update(deleted) error = %v, want ErrNoSuchPost", err)
	}
}

func TestUpdatePost(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	bob := f.join(t, "bob")
	f.category(t, "free")
	ctx := context.Background()
	post := f.write(t, alice.ID, "free", "before")

	p := &models.ParamPostUpdate{ID: post.ID, Title: "after", Content: `<b>new</b><iframe src="x"></iframe>`}
	if err := f.posts.Update(ctx, bob.ID, p); !errors.Is(err, cboard.ErrForbidden) {
		t.Fatalf("Update(other writer) error = %v, want ErrForbidden", err)
	}
	if err := f.posts.Update(ctx, alice.ID, p); err != nil {
		t.Fatalf("Update: %v", err)
	}

	item, err := f.posts.Read(ctx, post.ID)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if item.Title != "after" || item.Content != "<b>new</b>" {
		t.Errorf("after update: %q %q", item.Title, item.Content)
	}
}

func TestVoteOncePerUser(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	bob := f.join(t, "bob")
	f.category(t, "free")
	ctx := context.Background()
	post := f.write(t, alice.ID, "free", "vote me")

	res, err := f.posts.Vote(ctx, models.VoteLike, post.ID, bob.ID)
	if err != nil || !res.Success {
		t.Fatalf("first like = %+v, %v", res, err)
	}
	res, err = f.posts.Vote(ctx, models.VoteLike, post.ID, bob.ID)
	if err != nil {
		t.Fatalf("second like: %v", err)
	}
	if res.Success || res.Message != msgAlreadyLiked {
		t.Errorf("second like = %+v", res)
	}

	// polarities are independent
	res, err = f.posts.Vote(ctx, models.VoteDislike, post.ID, bob.ID)
	if err != nil || !res.Success {
		t.Fatalf("dislike = %+v, %v", res, err)
	}

	row, err := f.store.SelectPostByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("SelectPostByID: %v", err)
	}
	if row.Likes != 1 || row.Dislikes != 1 {
		t.Errorf("likes = %d dislikes = %d, want 1 and 1", row.Likes, row.Dislikes)
	}

	if _, err := f.posts.Vote(ctx, models.VoteLike, 9999, bob.ID); !errors.Is(err, cboard.ErrNoSuchPost) {
		t.Errorf("Vote(missing post) error = %v, want ErrNoSuchPost", err)
	}
	exist, err := f.store.CheckVoteIfExist(ctx, models.VoteLike, 9999, bob.ID)
	if err != nil || exist {
		t.Errorf("vote row left behind for missing post: %v, %v", exist, err)
	}
}

func TestListByCategory(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	f.category(t, "free")
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		f.write(t, alice.ID, "free", "p")
	}

	page, err := f.posts.ListByCategory(ctx, "free", 1)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if page.Total != 12 || len(page.Array) != 10 {
		t.Fatalf("page 1 = total %d, %d items", page.Total, len(page.Array))
	}
	if page.Array[0].CategoryOrder != 12 || page.Array[9].CategoryOrder != 3 {
		t.Errorf("page 1 order = %d..%d, want 12..3", page.Array[0].CategoryOrder, page.Array[9].CategoryOrder)
	}

	page, err = f.posts.ListByCategory(ctx, "free", 2)
	if err != nil {
		t.Fatalf("ListByCategory(2): %v", err)
	}
	if len(page.Array) != 2 || page.Array[1].CategoryOrder != 1 {
		t.Errorf("page 2 has %d items", len(page.Array))
	}

	if _, err := f.posts.ListByCategory(ctx, "free", 0); !errors.Is(err, cboard.ErrInvalidParam) {
		t.Errorf("page 0 error = %v, want ErrInvalidParam", err)
	}
	if _, err := f.posts.ListByCategory(ctx, "nope", 1); !errors.Is(err, cboard.ErrNoSuchCategory) {
		t.Errorf("unknown category error = %v, want ErrNoSuchCategory", err)
	}
}

func TestKeepResolvedWriters(t *testing.T) {
	posts := []*models.Post{{ID: 1, WriterID: 10}, {ID: 2, WriterID: 20}, {ID: 3, WriterID: 10}}
	writers := map[int64]*models.AccountInfo{10: {ID: 10, Nickname: "a"}}

	got := keepResolvedWriters(posts, writers)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("keepResolvedWriters() kept %d posts", len(got))
	}
}

func TestListRecentByUser(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	bob := f.join(t, "bob")
	f.category(t, "free")
	ctx := context.Background()

	first := f.write(t, alice.ID, "free", "first")
	second := f.write(t, alice.ID, "free", "second")
	f.write(t, bob.ID, "free", "bob's")
	if err := f.posts.Delete(ctx, alice.ID, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	list, err := f.posts.ListRecentByUser(ctx, alice.ID, 10)
	if err != nil {
		t.Fatalf("ListRecentByUser: %v", err)
	}
	if len(list) != 1 || list[0].ID != second.ID || list[0].CategoryTitle != "Title free" {
		t.Errorf("ListRecentByUser() = %+v", list)
	}

	if _, err := f.posts.ListRecentByUser(ctx, alice.ID, 101); !errors.Is(err, cboard.ErrInvalidParam) {
		t.Errorf("limit 101 error = %v, want ErrInvalidParam", err)
	}
}
