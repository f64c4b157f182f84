package model

import (
	"net/url"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/shared/utils"
)

// Query parameter names
const (
	ParamAuthorID    = "authorId"
	ParamTags        = "tags"
	ParamCategory    = "category"
	ParamSubcategory = "subcategory"
	ParamIsPublished = "isPublished"
)

// =====================================================
// LIST / SEARCH - GET /blogs
// =====================================================

// SearchQuery giữ mọi giá trị của từng param (param có thể lặp lại)
type SearchQuery struct {
	AuthorIDs     []string
	Tags          []string
	Categories    []string
	Subcategories []string

	provided bool
}

func NewSearchQuery(values url.Values) SearchQuery {
	return SearchQuery{
		AuthorIDs:     nonBlank(values[ParamAuthorID]),
		Tags:          nonBlank(values[ParamTags]),
		Categories:    nonBlank(values[ParamCategory]),
		Subcategories: nonBlank(values[ParamSubcategory]),
		provided:      len(values) > 0,
	}
}

// Provided: request có query string hay không (kể cả param lạ)
func (q SearchQuery) Provided() bool {
	return q.provided
}

// Validate: mọi authorId phải là identifier hợp lệ
func (q SearchQuery) Validate() error {
	return rule(q.AuthorIDs, ErrInvalidAuthorFilter, validation.Each(is.MongoID))
}

// Criteria chuyển query đã validate sang điều kiện OR cho repository
func (q SearchQuery) Criteria() AnyOfCriteria {
	c := AnyOfCriteria{
		Tags:          q.Tags,
		Categories:    q.Categories,
		Subcategories: q.Subcategories,
	}
	for _, id := range q.AuthorIDs {
		if oid, err := utils.ParseObjectID(id); err == nil {
			c.AuthorIDs = append(c.AuthorIDs, oid)
		}
	}
	return c
}

// AnyOfCriteria: document khớp nếu BẤT KỲ field nào khớp một giá trị
// (authorId ∈ AuthorIDs OR tags ∩ Tags OR category ∈ Categories OR subcategory ∩ Subcategories)
type AnyOfCriteria struct {
	AuthorIDs     []primitive.ObjectID
	Tags          []string
	Categories    []string
	Subcategories []string
}

func (c AnyOfCriteria) IsEmpty() bool {
	return len(c.AuthorIDs) == 0 && len(c.Tags) == 0 && len(c.Categories) == 0 && len(c.Subcategories) == 0
}

// =====================================================
// DELETE BY QUERY - DELETE /blogs?...
// =====================================================

type DeleteQuery struct {
	AuthorID      string
	Category      string
	IsPublished   string
	Tags          []string
	Subcategories []string

	provided bool
}

func NewDeleteQuery(values url.Values) DeleteQuery {
	return DeleteQuery{
		AuthorID:      strings.TrimSpace(values.Get(ParamAuthorID)),
		Category:      strings.TrimSpace(values.Get(ParamCategory)),
		IsPublished:   strings.TrimSpace(values.Get(ParamIsPublished)),
		Tags:          nonBlank(values[ParamTags]),
		Subcategories: nonBlank(values[ParamSubcategory]),
		provided:      len(values) > 0,
	}
}

func (q DeleteQuery) Provided() bool {
	return q.provided
}

// Filter: field nào không có hoặc không hợp lệ thì bỏ qua, không báo lỗi
func (q DeleteQuery) Filter() DeleteFilter {
	var f DeleteFilter

	if oid, err := utils.ParseObjectID(q.AuthorID); err == nil {
		f.AuthorID = &oid
	}
	if q.Category != "" {
		category := q.Category
		f.Category = &category
	}
	if published, err := strconv.ParseBool(q.IsPublished); err == nil {
		f.IsPublished = &published
	}
	f.Tags = q.Tags
	f.Subcategories = q.Subcategories

	return f
}

// DeleteFilter luôn ngầm kèm isDeleted=false AND deletedAt=null.
// Tags/Subcategories: document phải chứa TẤT CẢ giá trị.
type DeleteFilter struct {
	AuthorID      *primitive.ObjectID
	Category      *string
	IsPublished   *bool
	Tags          []string
	Subcategories []string
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
