package logic

import (
	"cboard/dao/mysql"
	cboard "cboard/errors"
	"cboard/internal/utils"
	"cboard/models"
	"context"
	"strings"

	"github.com/pkg/errors"
)

type CommentService struct {
	store     *mysql.Store
	lookup    *UserLookup
	sanitizer *utils.Sanitizer
}

func NewCommentService(store *mysql.Store, lookup *UserLookup, sanitizer *utils.Sanitizer) *CommentService {
	return &CommentService{store: store, lookup: lookup, sanitizer: sanitizer}
}

func (s *CommentService) Create(ctx context.Context, p *models.ParamCommentCreate) (*models.Comment, error) {
	if p.PostID <= 0 || p.UserID <= 0 || strings.TrimSpace(p.Content) == "" {
		return nil, cboard.ErrInvalidParam
	}
	content := strings.TrimSpace(s.sanitizer.Sanitize(p.Content))
	if content == "" {
		return nil, cboard.ErrInvalidParam
	}

	if _, err := s.store.SelectVisiblePost(ctx, p.PostID); err != nil {
		if mysql.IsNotFound(err) {
			return nil, cboard.ErrNoSuchPost
		}
		return nil, errors.Wrap(err, "logic:CreateComment: SelectVisiblePost")
	}

	// a reply must hang off a visible comment of the same post
	if p.ParentCommentID != nil {
		parent, err := s.store.SelectVisibleComment(ctx, *p.ParentCommentID)
		if err != nil {
			if mysql.IsNotFound(err) {
				return nil, cboard.ErrInvalidParam
			}
			return nil, errors.Wrap(err, "logic:CreateComment: SelectVisibleComment")
		}
		if parent.PostID != p.PostID {
			return nil, cboard.ErrInvalidParam
		}
	}

	comment := &models.Comment{
		PostID:          p.PostID,
		UserID:          p.UserID,
		ParentCommentID: p.ParentCommentID,
		Content:         content,
		Status:          models.StatusVisible,
	}
	if err := s.store.InsertComment(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "logic:CreateComment: InsertComment")
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, actorID int64, p *models.ParamCommentUpdate) error {
	content := strings.TrimSpace(s.sanitizer.Sanitize(p.Content))
	if p.CommentID <= 0 || content == "" {
		return cboard.ErrInvalidParam
	}

	if err := s.checkOwner(ctx, actorID, p.CommentID); err != nil {
		return errors.Wrap(err, "logic:UpdateComment")
	}

	rows, err := s.store.UpdateCommentContent(ctx, p.CommentID, content)
	if err != nil {
		return errors.Wrap(err, "logic:UpdateComment: UpdateCommentContent")
	}
	if rows == 0 {
		return cboard.ErrNoSuchComment
	}
	return nil
}

func (s *CommentService) Delete(ctx context.Context, actorID, commentID int64) error {
	if commentID <= 0 {
		return cboard.ErrInvalidParam
	}
	if err := s.checkOwner(ctx, actorID, commentID); err != nil {
		return errors.Wrap(err, "logic:DeleteComment")
	}

	rows, err := s.store.UpdateCommentStatus(ctx, commentID, models.StatusDeleted)
	if err != nil {
		return errors.Wrap(err, "logic:DeleteComment: UpdateCommentStatus")
	}
	if rows == 0 {
		return cboard.ErrNoSuchComment
	}
	return nil
}

func (s *CommentService) checkOwner(ctx context.Context, actorID, commentID int64) error {
	comment, err := s.store.SelectVisibleComment(ctx, commentID)
	if err != nil {
		if mysql.IsNotFound(err) {
			return cboard.ErrNoSuchComment
		}
		return errors.Wrap(err, "SelectVisibleComment")
	}
	if comment.UserID != actorID {
		return cboard.ErrForbidden
	}
	return nil
}

// ListByPost returns the visible comments of a post as a reply tree.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]*models.CommentNode, error) {
	if postID <= 0 {
		return nil, cboard.ErrInvalidParam
	}
	if _, err := s.store.SelectVisiblePost(ctx, postID); err != nil {
		if mysql.IsNotFound(err) {
			return nil, cboard.ErrNoSuchPost
		}
		return nil, errors.Wrap(err, "logic:ListComments: SelectVisiblePost")
	}

	comments, err := s.store.SelectCommentsByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "logic:ListComments: SelectCommentsByPost")
	}

	userIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}
	users, err := s.lookup.ResolveMany(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "logic:ListComments: ResolveMany")
	}

	return BuildCommentTree(keepResolvedCommenters(comments, users)), nil
}

// keepResolvedCommenters drops comments whose author account is gone and
// renders the rest as detached nodes. Replies to a dropped comment become
// orphans and are removed by BuildCommentTree.
func keepResolvedCommenters(comments []*models.Comment, users map[int64]*models.AccountInfo) []*models.CommentNode {
	nodes := make([]*models.CommentNode, 0, len(comments))
	for _, c := range comments {
		user, ok := users[c.UserID]
		if !ok {
			continue
		}
		nodes = append(nodes, &models.CommentNode{
			ID:              c.ID,
			PostID:          c.PostID,
			UserID:          c.UserID,
			User:            user.Nickname,
			Content:         c.Content,
			CreatedAt:       c.CreatedAt,
			ParentCommentID: c.ParentCommentID,
		})
	}
	return nodes
}

// BuildCommentTree links nodes into a forest in a single pass. Nodes must
// be in creation order so every parent is visited before its replies. A
// node whose parent is not in the input is dropped along with its subtree.
func BuildCommentTree(nodes []*models.CommentNode) []*models.CommentNode {
	byID := make(map[int64]*models.CommentNode, len(nodes))
	roots := make([]*models.CommentNode, 0)

	for _, n := range nodes {
		n.Replies = make([]*models.CommentNode, 0)
		if n.ParentCommentID == nil {
			byID[n.ID] = n
			roots = append(roots, n)
			continue
		}
		parent, ok := byID[*n.ParentCommentID]
		if !ok {
			// orphan
			continue
		}
		byID[n.ID] = n
		parent.Replies = append(parent.Replies, n)
	}
	return roots
}
