package model

import (
	"encoding/json"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/shared/utils"
)

// =====================================================
// VALIDATION PIPELINE
// =====================================================

// Check là một bước trong pipeline; pipeline dừng ở lỗi đầu tiên
type Check func() error

// RunChecks chạy các bước theo đúng thứ tự truyền vào
func RunChecks(checks ...Check) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// rule chạy ozzo rules và thay lỗi chung bằng sentinel error của field
func rule(value interface{}, failure error, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return failure
	}
	return nil
}

// decodeFields giải mã từng field vào target riêng của nó.
// Field sai kiểu không làm hỏng cả body mà được đánh dấu invalid,
// để lỗi xuất hiện đúng ở bước kiểm tra của field đó.
// Trả về số key top-level và tập field sai kiểu.
func decodeFields(data []byte, targets map[string]interface{}) (int, map[string]bool, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, nil, err
	}

	invalid := make(map[string]bool)
	for name, target := range targets {
		value, ok := raw[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			invalid[name] = true
		}
	}
	return len(raw), invalid, nil
}

// truthy: false, 0, "", null là false; mọi giá trị khác là true
func truthy(raw json.RawMessage) bool {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// typed trả failure khi field gửi lên sai kiểu, ngược lại chạy ozzo rules
func typed(invalid bool, value interface{}, failure error, rules ...validation.Rule) error {
	if invalid {
		return failure
	}
	return rule(value, failure, rules...)
}

// =====================================================
// CREATE BLOG REQUEST - POST /blogs
// =====================================================

type CreateBlogRequest struct {
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	AuthorID    string   `json:"authorId"`
	Tags        []string `json:"tags"`
	Subcategory []string `json:"subcategory"`
	Category    string   `json:"category"`
	IsPublished bool     `json:"isPublished"`

	fieldCount int
	invalid    map[string]bool
}

func (r *CreateBlogRequest) UnmarshalJSON(data []byte) error {
	var published json.RawMessage
	n, invalid, err := decodeFields(data, map[string]interface{}{
		"title":       &r.Title,
		"body":        &r.Body,
		"authorId":    &r.AuthorID,
		"tags":        &r.Tags,
		"subcategory": &r.Subcategory,
		"category":    &r.Category,
		"isPublished": &published,
	})
	if err != nil {
		return err
	}

	r.IsPublished = truthy(published)
	r.fieldCount = n
	r.invalid = invalid
	return nil
}

func (r CreateBlogRequest) CheckNotEmpty() error {
	if r.fieldCount == 0 {
		return ErrEmptyCreateBody
	}
	return nil
}

func (r CreateBlogRequest) CheckTitle() error {
	return typed(r.invalid["title"], r.Title, ErrTitleRequired, validation.Required, utils.NotBlank)
}

func (r CreateBlogRequest) CheckBody() error {
	return typed(r.invalid["body"], r.Body, ErrBodyRequired, validation.Required, utils.NotBlank)
}

func (r CreateBlogRequest) CheckAuthorID() error {
	return typed(r.invalid["authorId"], r.AuthorID, ErrAuthorIDRequired, validation.Required, is.MongoID)
}

func (r CreateBlogRequest) CheckTags() error {
	return typed(r.invalid["tags"], r.Tags, ErrTagsRequired, validation.Required)
}

func (r CreateBlogRequest) CheckSubcategory() error {
	return typed(r.invalid["subcategory"], r.Subcategory, ErrSubcategoryRequired, validation.Required)
}

func (r CreateBlogRequest) CheckCategory() error {
	return typed(r.invalid["category"], r.Category, ErrCategoryRequired, validation.Required, utils.NotBlank)
}

// NormalizedAuthorID: ObjectID hex không phân biệt hoa thường
func (r CreateBlogRequest) NormalizedAuthorID() string {
	return strings.ToLower(r.AuthorID)
}

// ToEntity dựng document mới; publishedAt chỉ có khi publish ngay lúc tạo
func (r CreateBlogRequest) ToEntity(authorID primitive.ObjectID, now time.Time) *Blog {
	b := &Blog{
		ID:          primitive.NewObjectID(),
		Title:       r.Title,
		Body:        r.Body,
		AuthorID:    authorID,
		Tags:        r.Tags,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		IsPublished: r.IsPublished,
		IsDeleted:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if b.IsPublished {
		publishedAt := now
		b.PublishedAt = &publishedAt
	}
	return b
}

// =====================================================
// UPDATE BLOG REQUEST - PUT /blogs/:blogId
// =====================================================

// UpdateBlogRequest: nil = không gửi, non-nil rỗng hoặc sai kiểu = gửi nhưng không hợp lệ
type UpdateBlogRequest struct {
	Title       *string   `json:"title"`
	Body        *string   `json:"body"`
	Tags        *[]string `json:"tags"`
	Subcategory *[]string `json:"subcategory"`

	fieldCount int
	invalid    map[string]bool
}

func (r *UpdateBlogRequest) UnmarshalJSON(data []byte) error {
	n, invalid, err := decodeFields(data, map[string]interface{}{
		"title":       &r.Title,
		"body":        &r.Body,
		"tags":        &r.Tags,
		"subcategory": &r.Subcategory,
	})
	if err != nil {
		return err
	}

	r.fieldCount = n
	r.invalid = invalid
	return nil
}

func (r UpdateBlogRequest) CheckNotEmpty() error {
	if r.fieldCount == 0 {
		return ErrEmptyUpdateBody
	}
	return nil
}

func (r UpdateBlogRequest) CheckTitle() error {
	return typed(r.invalid["title"], r.Title, ErrTitleInvalid, validation.When(r.Title != nil, validation.Required, utils.NotBlank))
}

func (r UpdateBlogRequest) CheckBody() error {
	return typed(r.invalid["body"], r.Body, ErrBodyInvalid, validation.When(r.Body != nil, validation.Required, utils.NotBlank))
}

func (r UpdateBlogRequest) CheckTags() error {
	return typed(r.invalid["tags"], r.Tags, ErrTagsInvalid, validation.When(r.Tags != nil, validation.Required))
}

func (r UpdateBlogRequest) CheckSubcategory() error {
	return typed(r.invalid["subcategory"], r.Subcategory, ErrSubcategoryInvalid, validation.When(r.Subcategory != nil, validation.Required))
}

// ToUpdate dựng update expression: publishedAt/isPublished luôn được set,
// bất kể field nào thay đổi
func (r UpdateBlogRequest) ToUpdate(now time.Time) *BlogUpdate {
	u := &BlogUpdate{
		Title:       r.Title,
		Body:        r.Body,
		PublishedAt: now,
		UpdatedAt:   now,
	}
	if r.Tags != nil {
		u.AppendTags = append([]string(nil), (*r.Tags)...)
	}
	if r.Subcategory != nil {
		u.AddSubcategories = uniqueStrings(*r.Subcategory)
	}
	return u
}

// uniqueStrings giữ thứ tự xuất hiện đầu tiên
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
