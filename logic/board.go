package logic

import (
	"cboard/dao/mysql"
	cboard "cboard/errors"
	"cboard/models"
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// BoardService manages categories. Category pages live in PostService.
type BoardService struct {
	store       *mysql.Store
	previewSize int
}

func NewBoardService(store *mysql.Store, previewSize int) *BoardService {
	if previewSize <= 0 {
		previewSize = 4
	}
	return &BoardService{store: store, previewSize: previewSize}
}

func (s *BoardService) CreateCategory(ctx context.Context, p *models.ParamCategoryCreate) (*models.BoardCategory, error) {
	title := strings.TrimSpace(p.Title)
	desc := strings.TrimSpace(p.Desc)
	slug := strings.TrimSpace(p.Slug)
	if title == "" || desc == "" || !slugPattern.MatchString(slug) {
		return nil, cboard.ErrInvalidParam
	}

	_, err := s.store.SelectCategoryByTitleOrSlug(ctx, title, slug)
	if err == nil {
		return nil, cboard.ErrCategoryExist
	}
	if !mysql.IsNotFound(err) {
		return nil, errors.Wrap(err, "logic:CreateCategory: SelectCategoryByTitleOrSlug")
	}

	category := &models.BoardCategory{Title: title, Slug: slug, Description: desc}
	if err := s.store.InsertCategory(ctx, category); err != nil {
		if mysql.IsDuplicateKey(err) {
			return nil, cboard.ErrCategoryExist
		}
		return nil, errors.Wrap(err, "logic:CreateCategory: InsertCategory")
	}
	return category, nil
}

// ListCategories returns up to limit categories, each with its most
// recent visible posts embedded.
func (s *BoardService) ListCategories(ctx context.Context, limit int) ([]*models.CategoryDTO, error) {
	categories, err := s.store.SelectCategoryList(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "logic:ListCategories: SelectCategoryList")
	}
	if len(categories) == 0 {
		return nil, cboard.ErrNoCategories
	}

	res := make([]*models.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		posts, err := s.store.SelectPostsByCategory(ctx, c.Slug, 0, s.previewSize)
		if err != nil {
			return nil, errors.Wrap(err, "logic:ListCategories: SelectPostsByCategory")
		}
		previews := make([]*models.PostPreview, 0, len(posts))
		for _, p := range posts {
			previews = append(previews, &models.PostPreview{
				ID:            p.ID,
				Title:         p.Title,
				WriterID:      p.WriterID,
				CategoryOrder: p.CategoryOrder,
				Views:         p.Views,
				Likes:         p.Likes,
				WrittenTime:   p.WrittenTime,
			})
		}
		res = append(res, &models.CategoryDTO{
			ID:          c.ID,
			Title:       c.Title,
			Slug:        c.Slug,
			Description: c.Description,
			Posts:       previews,
		})
	}
	return res, nil
}

func (s *BoardService) GetCategoryInfo(ctx context.Context, slug string) (*models.BoardCategory, error) {
	category, err := s.store.SelectCategoryBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, cboard.ErrNoSuchCategory
		}
		return nil, errors.Wrap(err, "logic:GetCategoryInfo: SelectCategoryBySlug")
	}
	return category, nil
}
