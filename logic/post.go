package logic

import (
	"cboard/dao/mysql"
	cboard "cboard/errors"
	"cboard/internal/utils"
	"cboard/models"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	msgLikeAdded        = "Like added successfully."
	msgDislikeAdded     = "Dislike added successfully."
	msgAlreadyLiked     = "You have already liked this post."
	msgAlreadyDisliked  = "You have already disliked this post."
	defaultPageSize     = 10
	defaultRecentLimit  = 10
	maxRecentPostsLimit = 100
)

// rolls a vote transaction back without surfacing an error
var errAlreadyVoted = errors.New("already voted")

type PostService struct {
	store     *mysql.Store
	lookup    *UserLookup
	sanitizer *utils.Sanitizer
	pageSize  int
}

func NewPostService(store *mysql.Store, lookup *UserLookup, sanitizer *utils.Sanitizer, pageSize int) *PostService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &PostService{store: store, lookup: lookup, sanitizer: sanitizer, pageSize: pageSize}
}

// Create stores a post at the end of its category. The category row is
// locked for the rest of the transaction so concurrent writers get
// consecutive category_order values.
func (s *PostService) Create(ctx context.Context, p *models.ParamPostWrite) (*models.Post, error) {
	title := strings.TrimSpace(p.Title)
	category := strings.TrimSpace(p.Category)
	content := strings.TrimSpace(s.sanitizer.Sanitize(p.Content))
	if title == "" || category == "" || content == "" || p.Writer <= 0 {
		return nil, cboard.ErrInvalidParam
	}

	if _, err := s.lookup.Resolve(ctx, p.Writer); err != nil {
		if errors.Is(err, cboard.ErrUserNotExist) {
			return nil, cboard.ErrNoSuchWriter
		}
		return nil, errors.Wrap(err, "logic:CreatePost: Resolve")
	}

	post := &models.Post{
		Title:       title,
		Content:     content,
		WriterID:    p.Writer,
		Category:    category,
		WrittenTime: time.Now(),
		Status:      models.StatusVisible,
	}
	err := s.store.Transaction(ctx, func(tx *mysql.Store) error {
		if _, err := tx.LockCategory(ctx, category); err != nil {
			if mysql.IsNotFound(err) {
				return cboard.ErrNoSuchCategory
			}
			return errors.Wrap(err, "LockCategory")
		}

		order, err := tx.SelectNextCategoryOrder(ctx, category)
		if err != nil {
			return errors.Wrap(err, "SelectNextCategoryOrder")
		}
		post.CategoryOrder = order

		return errors.Wrap(tx.InsertPost(ctx, post), "InsertPost")
	})
	if err != nil {
		if errors.Is(err, cboard.ErrNoSuchCategory) {
			return nil, cboard.ErrNoSuchCategory
		}
		return nil, errors.Wrap(err, "logic:CreatePost: Transaction")
	}
	return post, nil
}

// Read counts a view and returns the post with its writer. Deleted and
// missing posts are not counted.
func (s *PostService) Read(ctx context.Context, postID int64) (*models.PostItem, error) {
	rows, err := s.store.IncrPostViews(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "logic:ReadPost: IncrPostViews")
	}
	if rows == 0 {
		return nil, cboard.ErrNoSuchPost
	}

	post, err := s.store.SelectVisiblePost(ctx, postID)
	if err != nil {
		// deleted between the two statements
		if mysql.IsNotFound(err) {
			return nil, cboard.ErrNoSuchPost
		}
		return nil, errors.Wrap(err, "logic:ReadPost: SelectVisiblePost")
	}

	writer, err := s.lookup.Resolve(ctx, post.WriterID)
	if err != nil {
		if errors.Is(err, cboard.ErrUserNotExist) {
			return nil, cboard.ErrNoSuchWriter
		}
		return nil, errors.Wrap(err, "logic:ReadPost: Resolve")
	}

	return &models.PostItem{
		ID:          post.ID,
		Title:       post.Title,
		Category:    post.Category,
		WriterID:    post.WriterID,
		Writer:      writer.Nickname,
		Likes:       post.Likes,
		Dislikes:    post.Dislikes,
		Views:       post.Views,
		WrittenTime: post.WrittenTime,
		Content:     post.Content,
	}, nil
}

func (s *PostService) Update(ctx context.Context, actorID int64, p *models.ParamPostUpdate) error {
	title := strings.TrimSpace(p.Title)
	content := strings.TrimSpace(s.sanitizer.Sanitize(p.Content))
	if title == "" || content == "" {
		return cboard.ErrInvalidParam
	}

	post, err := s.store.SelectVisiblePost(ctx, p.ID)
	if err != nil {
		if mysql.IsNotFound(err) {
			return cboard.ErrNoSuchPost
		}
		return errors.Wrap(err, "logic:UpdatePost: SelectVisiblePost")
	}
	if post.WriterID != actorID {
		return cboard.ErrForbidden
	}

	rows, err := s.store.UpdatePostContent(ctx, p.ID, title, content)
	if err != nil {
		return errors.Wrap(err, "logic:UpdatePost: UpdatePostContent")
	}
	if rows == 0 {
		return cboard.ErrNoSuchPost
	}
	return nil
}

// Delete hides a post. Deleting an already deleted post succeeds; only
// ids that never existed are NotFound.
func (s *PostService) Delete(ctx context.Context, actorID, postID int64) error {
	post, err := s.store.SelectPostByID(ctx, postID)
	if err != nil {
		if mysql.IsNotFound(err) {
			return cboard.ErrNoSuchPost
		}
		return errors.Wrap(err, "logic:DeletePost: SelectPostByID")
	}
	if post.WriterID != actorID {
		return cboard.ErrForbidden
	}
	if post.Status == models.StatusDeleted {
		return nil
	}

	_, err = s.store.UpdatePostStatus(ctx, postID, models.StatusDeleted)
	return errors.Wrap(err, "logic:DeletePost: UpdatePostStatus")
}

// Vote records one like or dislike per (post, user). A repeated vote is
// acknowledged with Success=false and changes nothing.
func (s *PostService) Vote(ctx context.Context, voteType models.VoteType, postID, userID int64) (*models.VoteResult, error) {
	if postID <= 0 || userID <= 0 {
		return nil, cboard.ErrInvalidParam
	}

	column, added, already := "likes", msgLikeAdded, msgAlreadyLiked
	if voteType == models.VoteDislike {
		column, added, already = "dislikes", msgDislikeAdded, msgAlreadyDisliked
	}

	err := s.store.Transaction(ctx, func(tx *mysql.Store) error {
		exist, err := tx.CheckVoteIfExist(ctx, voteType, postID, userID)
		if err != nil {
			return errors.Wrap(err, "CheckVoteIfExist")
		}
		if exist {
			return errAlreadyVoted
		}

		rows, err := tx.IncrPostCounter(ctx, postID, column)
		if err != nil {
			return errors.Wrap(err, "IncrPostCounter")
		}
		if rows == 0 {
			return cboard.ErrNoSuchPost
		}

		if err := tx.InsertVote(ctx, voteType, postID, userID); err != nil {
			// a concurrent vote won; the increment is rolled back with it
			if mysql.IsDuplicateKey(err) {
				return errAlreadyVoted
			}
			return errors.Wrap(err, "InsertVote")
		}
		return nil
	})

	switch {
	case err == nil:
		return &models.VoteResult{Success: true, Message: added}, nil
	case errors.Is(err, errAlreadyVoted):
		return &models.VoteResult{Success: false, Message: already}, nil
	case errors.Is(err, cboard.ErrNoSuchPost):
		return nil, cboard.ErrNoSuchPost
	default:
		return nil, errors.Wrapf(err, "logic:Vote(%s): Transaction", voteType)
	}
}

// ListByCategory returns one page of visible posts, newest first. Total
// counts every visible post of the category.
func (s *PostService) ListByCategory(ctx context.Context, category string, page int64) (*models.BoardPage, error) {
	category = strings.TrimSpace(category)
	if category == "" || page < 1 {
		return nil, cboard.ErrInvalidParam
	}

	if _, err := s.store.SelectCategoryBySlug(ctx, category); err != nil {
		if mysql.IsNotFound(err) {
			return nil, cboard.ErrNoSuchCategory
		}
		return nil, errors.Wrap(err, "logic:ListByCategory: SelectCategoryBySlug")
	}

	total, err := s.store.CountPostsByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "logic:ListByCategory: CountPostsByCategory")
	}

	offset := int((page - 1) * int64(s.pageSize))
	posts, err := s.store.SelectPostsByCategory(ctx, category, offset, s.pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "logic:ListByCategory: SelectPostsByCategory")
	}

	writerIDs := make([]int64, 0, len(posts))
	for _, p := range posts {
		writerIDs = append(writerIDs, p.WriterID)
	}
	writers, err := s.lookup.ResolveMany(ctx, writerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "logic:ListByCategory: ResolveMany")
	}

	posts = keepResolvedWriters(posts, writers)

	items := make([]*models.BoardItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, &models.BoardItem{
			ID:            p.ID,
			WriterID:      p.WriterID,
			Writer:        writers[p.WriterID].Nickname,
			Title:         p.Title,
			Content:       p.Content,
			WrittenTime:   p.WrittenTime,
			CategoryOrder: p.CategoryOrder,
			Views:         p.Views,
			Likes:         p.Likes,
			Dislikes:      p.Dislikes,
		})
	}
	return &models.BoardPage{Total: total, Array: items}, nil
}

// keepResolvedWriters drops posts whose writer account is gone. The page
// can come back shorter than the page size while Total still counts them.
func keepResolvedWriters(posts []*models.Post, writers map[int64]*models.AccountInfo) []*models.Post {
	res := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := writers[p.WriterID]; ok {
			res = append(res, p)
		}
	}
	return res
}

func (s *PostService) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.RecentPost, error) {
	if limit == 0 {
		limit = defaultRecentLimit
	}
	if userID <= 0 || limit < 1 || limit > maxRecentPostsLimit {
		return nil, cboard.ErrInvalidParam
	}

	posts, err := s.store.SelectRecentPostsByWriter(ctx, userID, limit)
	return posts, errors.Wrap(err, "logic:ListRecentByUser: SelectRecentPostsByWriter")
}
