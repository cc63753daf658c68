package logic

import (
	cboard "cboard/errors"
	"cboard/models"
	"context"
	"testing"

	"github.com/pkg/errors"
)

func ptr(id int64) *int64 { return &id }

func node(id int64, parent *int64) *models.CommentNode {
	return &models.CommentNode{ID: id, ParentCommentID: parent}
}

func TestBuildCommentTreeChain(t *testing.T) {
	roots := BuildCommentTree([]*models.CommentNode{
		node(1, nil),
		node(2, ptr(1)),
		node(3, ptr(2)),
	})

	if len(roots) != 1 || roots[0].ID != 1 {
		t.Fatalf("roots = %v", roots)
	}
	if len(roots[0].Replies) != 1 || roots[0].Replies[0].ID != 2 {
		t.Fatalf("node 1 replies = %v", roots[0].Replies)
	}
	two := roots[0].Replies[0]
	if len(two.Replies) != 1 || two.Replies[0].ID != 3 {
		t.Fatalf("node 2 replies = %v", two.Replies)
	}
	if three := two.Replies[0]; three.Replies == nil || len(three.Replies) != 0 {
		t.Errorf("leaf replies = %v, want empty slice", three.Replies)
	}
}

func TestBuildCommentTreeSiblingsAndOrphans(t *testing.T) {
	roots := BuildCommentTree([]*models.CommentNode{
		node(1, nil),
		node(2, nil),
		node(3, ptr(1)),
		node(4, ptr(99)), // parent filtered out
		node(5, ptr(4)),  // child of an orphan
		node(6, ptr(1)),
	})

	if len(roots) != 2 || roots[0].ID != 1 || roots[1].ID != 2 {
		t.Fatalf("roots = %v", roots)
	}
	replies := roots[0].Replies
	if len(replies) != 2 || replies[0].ID != 3 || replies[1].ID != 6 {
		t.Errorf("node 1 replies = %v, want [3 6] in order", replies)
	}
	if len(roots[1].Replies) != 0 {
		t.Errorf("node 2 replies = %v", roots[1].Replies)
	}
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	if roots := BuildCommentTree(nil); roots == nil || len(roots) != 0 {
		t.Errorf("BuildCommentTree(nil) = %v, want empty slice", roots)
	}
}

func TestCommentLifecycle(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	bob := f.join(t, "bob")
	f.category(t, "free")
	ctx := context.Background()
	post := f.write(t, alice.ID, "free", "thread")

	create := func(user int64, content string, parent *int64) *models.Comment {
		t.Helper()
		c, err := f.comments.Create(ctx, &models.ParamCommentCreate{PostID: post.ID, UserID: user, Content: content, ParentCommentID: parent})
		if err != nil {
			t.Fatalf("Create(%q): %v", content, err)
		}
		return c
	}

	c1 := create(alice.ID, "top", nil)
	c2 := create(bob.ID, "reply", &c1.ID)
	c3 := create(alice.ID, "<b>deep</b><script>x</script>", &c2.ID)

	tree, err := f.comments.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(tree) != 1 || len(tree[0].Replies) != 1 || len(tree[0].Replies[0].Replies) != 1 {
		t.Fatalf("tree shape wrong: %+v", tree)
	}
	deep := tree[0].Replies[0].Replies[0]
	if deep.ID != c3.ID || deep.Content != "<b>deep</b>" || deep.User != alice.Nickname {
		t.Errorf("deep node = %+v", deep)
	}

	if err := f.comments.Update(ctx, alice.ID, &models.ParamCommentUpdate{CommentID: c2.ID, Content: "mine now"}); !errors.Is(err, cboard.ErrForbidden) {
		t.Errorf("Update(other user) error = %v, want ErrForbidden", err)
	}
	if err := f.comments.Update(ctx, bob.ID, &models.ParamCommentUpdate{CommentID: c2.ID, Content: "edited"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// deleting the middle comment orphans its reply
	if err := f.comments.Delete(ctx, bob.ID, c2.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := f.comments.Delete(ctx, bob.ID, c2.ID); !errors.Is(err, cboard.ErrNoSuchComment) {
		t.Errorf("second Delete error = %v, want ErrNoSuchComment", err)
	}
	tree, err = f.comments.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(tree) != 1 || len(tree[0].Replies) != 0 {
		t.Errorf("tree after delete = %+v", tree)
	}
}

func TestCreateCommentValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.join(t, "alice")
	f.category(t, "free")
	ctx := context.Background()
	post := f.write(t, alice.ID, "free", "a")
	other := f.write(t, alice.ID, "free", "b")

	elsewhere, err := f.comments.Create(ctx, &models.ParamCommentCreate{PostID: other.ID, UserID: alice.ID, Content: "hi"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name string
		p    models.ParamCommentCreate
		want error
	}{
		{"blank content", models.ParamCommentCreate{PostID: post.ID, UserID: alice.ID, Content: "   "}, cboard.ErrInvalidParam},
		{"missing post", models.ParamCommentCreate{PostID: 9999, UserID: alice.ID, Content: "x"}, cboard.ErrNoSuchPost},
		{"missing parent", models.ParamCommentCreate{PostID: post.ID, UserID: alice.ID, Content: "x", ParentCommentID: ptr(9999)}, cboard.ErrInvalidParam},
		{"parent on another post", models.ParamCommentCreate{PostID: post.ID, UserID: alice.ID, Content: "x", ParentCommentID: &elsewhere.ID}, cboard.ErrInvalidParam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.comments.Create(ctx, &tt.p); !errors.Is(err, tt.want) {
				t.Errorf("Create() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestKeepResolvedCommenters(t *testing.T) {
	comments := []*models.Comment{
		{ID: 1, UserID: 10},
		{ID: 2, UserID: 20, ParentCommentID: ptr(1)},
		{ID: 3, UserID: 10, ParentCommentID: ptr(2)},
	}
	users := map[int64]*models.AccountInfo{10: {ID: 10, Nickname: "a"}}

	nodes := keepResolvedCommenters(comments, users)
	if len(nodes) != 2 || nodes[0].ID != 1 || nodes[1].ID != 3 {
		t.Fatalf("keepResolvedCommenters() = %v", nodes)
	}

	// 3 lost its parent with the unresolved commenter
	roots := BuildCommentTree(nodes)
	if len(roots) != 1 || len(roots[0].Replies) != 0 {
		t.Errorf("tree = %+v", roots)
	}
}
