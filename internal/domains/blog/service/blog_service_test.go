package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/domains/blog/repository/mocks"
)

const (
	callerHex = "64b7f0c2a1b2c3d4e5f60718"
	otherHex  = "64b7f0c2a1b2c3d4e5f60719"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

type mockAuthors struct {
	mock.Mock
}

func (m *mockAuthors) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newTestService() (*BlogService, *mocks.Repository, *mockAuthors) {
	repo := new(mocks.Repository)
	authors := new(mockAuthors)
	svc := NewService(repo, authors).WithClock(func() time.Time { return fixedNow })
	return svc, repo, authors
}

func oid(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

func createRequest(t *testing.T, body string) model.CreateBlogRequest {
	t.Helper()
	var req model.CreateBlogRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func updateRequest(t *testing.T, body string) model.UpdateBlogRequest {
	t.Helper()
	var req model.UpdateBlogRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func blogOf(t *testing.T, ownerHex string, published, deleted bool) model.Blog {
	return model.Blog{
		ID:          primitive.NewObjectID(),
		Title:       "title",
		Body:        "body",
		AuthorID:    oid(t, ownerHex),
		Tags:        []string{"go"},
		Category:    "tech",
		Subcategory: []string{"web"},
		IsPublished: published,
		IsDeleted:   deleted,
	}
}

// ============================================
// CREATE
// ============================================

func TestCreate_Success(t *testing.T) {
	svc, repo, authors := newTestService()
	ctx := context.Background()

	authors.On("ExistsByID", ctx, oid(t, callerHex)).Return(true, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Blog")).Return(nil)

	t.Run("draft", func(t *testing.T) {
		req := createRequest(t, `{"title":"t","body":"b","authorId":"`+callerHex+`","tags":["go"],"subcategory":["web"],"category":"tech"}`)

		blog, err := svc.Create(ctx, callerHex, req)
		require.NoError(t, err)
		assert.Equal(t, callerHex, blog.AuthorID.Hex())
		assert.False(t, blog.IsDeleted)
		assert.False(t, blog.IsPublished)
		assert.Nil(t, blog.PublishedAt)
		assert.False(t, blog.ID.IsZero())
	})

	t.Run("published", func(t *testing.T) {
		req := createRequest(t, `{"title":"t","body":"b","authorId":"`+callerHex+`","tags":["go"],"subcategory":["web"],"category":"tech","isPublished":true}`)

		blog, err := svc.Create(ctx, callerHex, req)
		require.NoError(t, err)
		assert.True(t, blog.IsPublished)
		require.NotNil(t, blog.PublishedAt)
		assert.Equal(t, fixedNow, *blog.PublishedAt)
	})

	t.Run("upper-case id belongs to caller", func(t *testing.T) {
		req := createRequest(t, `{"title":"t","body":"b","authorId":"64B7F0C2A1B2C3D4E5F60718","tags":["go"],"subcategory":["web"],"category":"tech"}`)

		blog, err := svc.Create(ctx, callerHex, req)
		require.NoError(t, err)
		assert.Equal(t, callerHex, blog.AuthorID.Hex())
	})
}

func TestCreate_PipelineOrder(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"empty body", `{}`, model.ErrEmptyCreateBody},
		{"missing title", `{"body":"b"}`, model.ErrTitleRequired},
		{"blank title", `{"title":"   ","body":"b"}`, model.ErrTitleRequired},
		{"missing body", `{"title":"t"}`, model.ErrBodyRequired},
		{"missing authorId", `{"title":"t","body":"b"}`, model.ErrAuthorIDRequired},
		{"malformed authorId", `{"title":"t","body":"b","authorId":"123"}`, model.ErrAuthorIDRequired},
		{"foreign authorId before tags", `{"title":"t","body":"b","authorId":"` + otherHex + `"}`, model.ErrForbidden},
		{"missing tags", `{"title":"t","body":"b","authorId":"` + callerHex + `"}`, model.ErrTagsRequired},
		{"empty tags", `{"title":"t","body":"b","authorId":"` + callerHex + `","tags":[]}`, model.ErrTagsRequired},
		{"missing subcategory", `{"title":"t","body":"b","authorId":"` + callerHex + `","tags":["a"]}`, model.ErrSubcategoryRequired},
		{"missing category", `{"title":"t","body":"b","authorId":"` + callerHex + `","tags":["a"],"subcategory":["s"]}`, model.ErrCategoryRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, authors := newTestService()

			_, err := svc.Create(context.Background(), callerHex, createRequest(t, tt.body))
			assert.ErrorIs(t, err, tt.want)

			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			authors.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_AuthorMissing(t *testing.T) {
	svc, repo, authors := newTestService()
	authors.On("ExistsByID", mock.Anything, oid(t, callerHex)).Return(false, nil)

	req := createRequest(t, `{"title":"t","body":"b","authorId":"`+callerHex+`","tags":["go"],"subcategory":["web"],"category":"tech"}`)
	_, err := svc.Create(context.Background(), callerHex, req)

	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_StoreFailure(t *testing.T) {
	svc, repo, authors := newTestService()
	authors.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	req := createRequest(t, `{"title":"t","body":"b","authorId":"`+callerHex+`","tags":["go"],"subcategory":["web"],"category":"tech"}`)
	_, err := svc.Create(context.Background(), callerHex, req)

	require.Error(t, err)
	assert.Equal(t, 500, model.ToHTTPStatus(err))
}

// ============================================
// LIST
// ============================================

func TestList_NoQueryReturnsPublished(t *testing.T) {
	svc, repo, _ := newTestService()
	published := []model.Blog{blogOf(t, callerHex, true, false)}
	repo.On("FindPublished", mock.Anything).Return(published, nil)

	blogs, err := svc.List(context.Background(), model.NewSearchQuery(url.Values{}))

	require.NoError(t, err)
	assert.Equal(t, published, blogs)
	repo.AssertNotCalled(t, "FindAnyOf", mock.Anything, mock.Anything)
}

func TestList_NoQueryEmptyIsOK(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("FindPublished", mock.Anything).Return([]model.Blog{}, nil)

	blogs, err := svc.List(context.Background(), model.NewSearchQuery(nil))

	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestList_InvalidAuthorFilter(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.List(context.Background(), model.NewSearchQuery(url.Values{"authorId": {"nope"}}))

	assert.ErrorIs(t, err, model.ErrInvalidAuthorFilter)
	repo.AssertNotCalled(t, "FindAnyOf", mock.Anything, mock.Anything)
}

func TestList_UnknownParamsOnlyIsNotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("FindAnyOf", mock.Anything, model.AnyOfCriteria{}).Return([]model.Blog{}, nil)

	_, err := svc.List(context.Background(), model.NewSearchQuery(url.Values{"foo": {"bar"}}))

	assert.ErrorIs(t, err, model.ErrBlogNotFound)
	repo.AssertNotCalled(t, "FindPublished", mock.Anything)
}

func TestList_AnyOfThenVisibilityPass(t *testing.T) {
	svc, repo, _ := newTestService()

	visible := blogOf(t, callerHex, true, false)
	draft := blogOf(t, callerHex, false, false)
	deleted := blogOf(t, otherHex, true, true)

	query := model.NewSearchQuery(url.Values{"tags": {"go", "db"}, "category": {"tech"}})
	repo.On("FindAnyOf", mock.Anything, model.AnyOfCriteria{
		Tags:       []string{"go", "db"},
		Categories: []string{"tech"},
	}).Return([]model.Blog{visible, draft, deleted}, nil)

	blogs, err := svc.List(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, visible.ID, blogs[0].ID)
}

func TestList_NothingVisibleIsNotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("FindAnyOf", mock.Anything, mock.Anything).
		Return([]model.Blog{blogOf(t, callerHex, false, false)}, nil)

	_, err := svc.List(context.Background(), model.NewSearchQuery(url.Values{"authorId": {callerHex}}))

	assert.ErrorIs(t, err, model.ErrBlogNotFound)
}

func TestList_UnknownParamOnly(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("FindAnyOf", mock.Anything, model.AnyOfCriteria{}).Return([]model.Blog{}, nil)

	_, err := svc.List(context.Background(), model.NewSearchQuery(url.Values{"page": {"2"}}))

	assert.ErrorIs(t, err, model.ErrBlogNotFound)
	repo.AssertNotCalled(t, "FindPublished", mock.Anything)
}

// ============================================
// UPDATE
// ============================================

func TestUpdate_Validation(t *testing.T) {
	owned := blogOf(t, callerHex, false, false)

	tests := []struct {
		name   string
		blogID string
		body   string
		want   error
	}{
		{"empty body", owned.ID.Hex(), `{}`, model.ErrEmptyUpdateBody},
		{"invalid id", "xyz", `{"title":"t"}`, model.ErrInvalidBlogID},
		{"blank title", owned.ID.Hex(), `{"title":" "}`, model.ErrTitleInvalid},
		{"empty body field", owned.ID.Hex(), `{"body":""}`, model.ErrBodyInvalid},
		{"empty tags", owned.ID.Hex(), `{"tags":[]}`, model.ErrTagsInvalid},
		{"empty subcategory", owned.ID.Hex(), `{"subcategory":[]}`, model.ErrSubcategoryInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService()
			repo.On("FindActiveByID", mock.Anything, owned.ID).Return(&owned, nil).Maybe()

			_, err := svc.Update(context.Background(), callerHex, tt.blogID, updateRequest(t, tt.body))

			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "UpdateActive", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	id := primitive.NewObjectID()
	repo.On("FindActiveByID", mock.Anything, id).Return(nil, model.ErrBlogNotFound)

	_, err := svc.Update(context.Background(), callerHex, id.Hex(), updateRequest(t, `{"title":"t"}`))

	assert.ErrorIs(t, err, model.ErrBlogNotFound)
	assert.Equal(t, 404, model.ToHTTPStatus(err))
}

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	svc, repo, _ := newTestService()
	foreign := blogOf(t, otherHex, true, false)
	repo.On("FindActiveByID", mock.Anything, foreign.ID).Return(&foreign, nil)

	// ownership is checked before field validation
	_, err := svc.Update(context.Background(), callerHex, foreign.ID.Hex(), updateRequest(t, `{"title":""}`))

	assert.ErrorIs(t, err, model.ErrForbidden)
	repo.AssertNotCalled(t, "UpdateActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_OwnerAlwaysPublishes(t *testing.T) {
	svc, repo, _ := newTestService()
	draft := blogOf(t, callerHex, false, false)
	repo.On("FindActiveByID", mock.Anything, draft.ID).Return(&draft, nil)

	updated := draft
	updated.Title = "new"
	updated.IsPublished = true
	updated.PublishedAt = &fixedNow

	repo.On("UpdateActive", mock.Anything, draft.ID, mock.MatchedBy(func(u *model.BlogUpdate) bool {
		return u.Title != nil && *u.Title == "new" &&
			u.Body == nil &&
			u.PublishedAt.Equal(fixedNow) &&
			assert.ObjectsAreEqual([]string{"go", "go"}, u.AppendTags) &&
			assert.ObjectsAreEqual([]string{"web", "api"}, u.AddSubcategories)
	})).Return(&updated, nil)

	body := `{"title":"new","tags":["go","go"],"subcategory":["web","api","web"]}`
	blog, err := svc.Update(context.Background(), callerHex, draft.ID.Hex(), updateRequest(t, body))

	require.NoError(t, err)
	assert.True(t, blog.IsPublished)
	assert.Equal(t, fixedNow, *blog.PublishedAt)
	repo.AssertExpectations(t)
}

func TestUpdate_VanishedBetweenReadAndWrite(t *testing.T) {
	svc, repo, _ := newTestService()
	owned := blogOf(t, callerHex, true, false)
	repo.On("FindActiveByID", mock.Anything, owned.ID).Return(&owned, nil)
	repo.On("UpdateActive", mock.Anything, owned.ID, mock.Anything).Return(nil, model.ErrBlogNotFound)

	_, err := svc.Update(context.Background(), callerHex, owned.ID.Hex(), updateRequest(t, `{"body":"b"}`))

	assert.ErrorIs(t, err, model.ErrBlogNotFound)
}

// ============================================
// DELETE BY ID
// ============================================

func TestDeleteByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.DeleteByID(context.Background(), callerHex, "123")
		assert.ErrorIs(t, err, model.ErrInvalidBlogID)
	})

	t.Run("non-owner", func(t *testing.T) {
		svc, repo, _ := newTestService()
		foreign := blogOf(t, otherHex, true, false)
		repo.On("FindActiveByID", mock.Anything, foreign.ID).Return(&foreign, nil)

		_, err := svc.DeleteByID(context.Background(), callerHex, foreign.ID.Hex())

		assert.ErrorIs(t, err, model.ErrForbidden)
		repo.AssertNotCalled(t, "SoftDeleteByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("twice", func(t *testing.T) {
		svc, repo, _ := newTestService()
		owned := blogOf(t, callerHex, true, false)
		deleted := owned
		deleted.IsDeleted = true
		deleted.DeletedAt = &fixedNow

		repo.On("FindActiveByID", mock.Anything, owned.ID).Return(&owned, nil).Once()
		repo.On("SoftDeleteByID", mock.Anything, owned.ID, fixedNow).Return(&deleted, nil).Once()
		repo.On("FindActiveByID", mock.Anything, owned.ID).Return(nil, model.ErrBlogNotFound).Once()

		blog, err := svc.DeleteByID(context.Background(), callerHex, owned.ID.Hex())
		require.NoError(t, err)
		assert.True(t, blog.IsDeleted)
		assert.Equal(t, fixedNow, *blog.DeletedAt)

		_, err = svc.DeleteByID(context.Background(), callerHex, owned.ID.Hex())
		assert.ErrorIs(t, err, model.ErrBlogAlreadyDeleted)
		assert.Equal(t, 404, model.ToHTTPStatus(err))
	})
}

// ============================================
// DELETE BY QUERY
// ============================================

func TestDeleteByQuery_Guards(t *testing.T) {
	svc, repo, _ := newTestService()

	err := svc.DeleteByQuery(context.Background(), "not-an-id", model.NewDeleteQuery(url.Values{"category": {"x"}}))
	assert.ErrorIs(t, err, model.ErrInvalidCallerID)

	err = svc.DeleteByQuery(context.Background(), callerHex, model.NewDeleteQuery(url.Values{}))
	assert.ErrorIs(t, err, model.ErrQueryRequired)

	repo.AssertNotCalled(t, "FindForDeletion", mock.Anything, mock.Anything)
}

func TestDeleteByQuery_NoMatches(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("FindForDeletion", mock.Anything, mock.Anything).Return([]model.Blog{}, nil)

	err := svc.DeleteByQuery(context.Background(), callerHex, model.NewDeleteQuery(url.Values{"category": {"x"}}))

	assert.ErrorIs(t, err, model.ErrNoBlogMatched)
}

func TestDeleteByQuery_OnlyOwnedDeleted(t *testing.T) {
	svc, repo, _ := newTestService()
	mine := blogOf(t, callerHex, true, false)
	theirs := blogOf(t, otherHex, true, false)

	category := "tech"
	repo.On("FindForDeletion", mock.Anything, model.DeleteFilter{Category: &category}).
		Return([]model.Blog{mine, theirs}, nil)
	repo.On("SoftDeleteMany", mock.Anything, []primitive.ObjectID{mine.ID}, fixedNow).Return(int64(1), nil)

	err := svc.DeleteByQuery(context.Background(), callerHex, model.NewDeleteQuery(url.Values{
		"category": {"tech"},
		"authorId": {"garbage"},
	}))

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteByQuery_NothingOwnedStillSucceeds(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("FindForDeletion", mock.Anything, mock.Anything).
		Return([]model.Blog{blogOf(t, otherHex, true, false)}, nil)

	err := svc.DeleteByQuery(context.Background(), callerHex, model.NewDeleteQuery(url.Values{"tags": {"go"}}))

	require.NoError(t, err)
	repo.AssertNotCalled(t, "SoftDeleteMany", mock.Anything, mock.Anything, mock.Anything)
}
