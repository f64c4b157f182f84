package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/domains/blog/repository"
	"blog-backend/internal/shared/authz"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/logger"
)

// BlogService - Implements ServiceInterface
type BlogService struct {
	repo    repository.RepositoryInterface
	authors AuthorLookup
	now     func() time.Time
}

// NewService - Constructor with DI
func NewService(repo repository.RepositoryInterface, authors AuthorLookup) *BlogService {
	return &BlogService{
		repo:    repo,
		authors: authors,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock thay đồng hồ (dùng trong test)
func (s *BlogService) WithClock(now func() time.Time) *BlogService {
	s.now = now
	return s
}

// ============================================
// CREATE
// ============================================

func (s *BlogService) Create(ctx context.Context, callerID string, req model.CreateBlogRequest) (*model.Blog, error) {
	caller := strings.ToLower(callerID)

	// Thứ tự các bước cố định, dừng ở lỗi đầu tiên
	err := model.RunChecks(
		req.CheckNotEmpty,
		req.CheckTitle,
		req.CheckBody,
		req.CheckAuthorID,
		func() error { return authz.CheckOwnership(caller, req.NormalizedAuthorID()) },
		req.CheckTags,
		req.CheckSubcategory,
		req.CheckCategory,
	)
	if err != nil {
		return nil, err
	}

	authorID, err := utils.ParseObjectID(req.AuthorID)
	if err != nil {
		return nil, model.ErrAuthorIDRequired
	}

	// Chỉ xảy ra khi token còn hạn nhưng author đã bị xóa
	exists, err := s.authors.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("check author: %w", err)
	}
	if !exists {
		return nil, model.ErrAuthorNotFound
	}

	blog := req.ToEntity(authorID, s.now())
	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return blog, nil
}

// ============================================
// LIST / SEARCH
// ============================================

// List: không có query -> plain find các bài published;
// có query -> match OR trên từng field rồi lọc visibility ở bước hai
func (s *BlogService) List(ctx context.Context, query model.SearchQuery) ([]model.Blog, error) {
	if !query.Provided() {
		blogs, err := s.repo.FindPublished(ctx)
		if err != nil {
			return nil, fmt.Errorf("list blogs: %w", err)
		}
		return blogs, nil
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}

	matches, err := s.repo.FindAnyOf(ctx, query.Criteria())
	if err != nil {
		return nil, fmt.Errorf("search blogs: %w", err)
	}

	visible := make([]model.Blog, 0, len(matches))
	for i := range matches {
		if matches[i].IsVisible() {
			visible = append(visible, matches[i])
		}
	}
	if len(visible) == 0 {
		return nil, model.ErrBlogNotFound
	}
	return visible, nil
}

// ============================================
// UPDATE
// ============================================

func (s *BlogService) Update(ctx context.Context, callerID, blogID string, req model.UpdateBlogRequest) (*model.Blog, error) {
	if err := req.CheckNotEmpty(); err != nil {
		return nil, err
	}

	id, err := utils.ParseObjectID(blogID)
	if err != nil {
		return nil, model.ErrInvalidBlogID
	}

	blog, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, model.ErrBlogNotFound, "find blog")
	}

	err = model.RunChecks(
		func() error { return authz.CheckOwnership(strings.ToLower(callerID), blog.OwnerID()) },
		req.CheckTitle,
		req.CheckBody,
		req.CheckTags,
		req.CheckSubcategory,
	)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateActive(ctx, id, req.ToUpdate(s.now()))
	if err != nil {
		return nil, notFoundOr(err, model.ErrBlogNotFound, "update blog")
	}
	return updated, nil
}

// ============================================
// DELETE
// ============================================

func (s *BlogService) DeleteByID(ctx context.Context, callerID, blogID string) (*model.Blog, error) {
	id, err := utils.ParseObjectID(blogID)
	if err != nil {
		return nil, model.ErrInvalidBlogID
	}

	blog, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, model.ErrBlogAlreadyDeleted, "find blog")
	}

	if err := authz.CheckOwnership(strings.ToLower(callerID), blog.OwnerID()); err != nil {
		return nil, err
	}

	deleted, err := s.repo.SoftDeleteByID(ctx, id, s.now())
	if err != nil {
		return nil, notFoundOr(err, model.ErrBlogAlreadyDeleted, "delete blog")
	}
	return deleted, nil
}

// DeleteByQuery xóa những bài caller sở hữu trong số bài khớp filter;
// bài của author khác bị bỏ qua, không báo lỗi
func (s *BlogService) DeleteByQuery(ctx context.Context, callerID string, query model.DeleteQuery) error {
	if !utils.IsValidObjectID(callerID) {
		return model.ErrInvalidCallerID
	}
	if !query.Provided() {
		return model.ErrQueryRequired
	}

	matches, err := s.repo.FindForDeletion(ctx, query.Filter())
	if err != nil {
		return fmt.Errorf("find blogs for deletion: %w", err)
	}
	if len(matches) == 0 {
		return model.ErrNoBlogMatched
	}

	caller := strings.ToLower(callerID)
	owned := make([]primitive.ObjectID, 0, len(matches))
	for i := range matches {
		if authz.IsOwner(caller, matches[i].OwnerID()) {
			owned = append(owned, matches[i].ID)
		}
	}
	if len(owned) == 0 {
		return nil
	}

	n, err := s.repo.SoftDeleteMany(ctx, owned, s.now())
	if err != nil {
		return fmt.Errorf("delete blogs: %w", err)
	}

	logger.Info("blogs soft-deleted by query", map[string]interface{}{
		"author_id": caller,
		"matched":   len(matches),
		"deleted":   n,
	})
	return nil
}

// notFoundOr map lỗi not-found của repository sang lỗi của operation
func notFoundOr(err, notFound error, op string) error {
	if errors.Is(err, model.ErrBlogNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
