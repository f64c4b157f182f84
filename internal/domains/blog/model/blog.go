package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog là document lưu trong collection "blogs"
// JSON/BSON dùng camelCase để giữ nguyên contract với client cũ
type Blog struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Body        string             `json:"body" bson:"body"`
	AuthorID    primitive.ObjectID `json:"authorId" bson:"authorId"`
	Tags        []string           `json:"tags" bson:"tags"`
	Category    string             `json:"category" bson:"category"`
	Subcategory []string           `json:"subcategory" bson:"subcategory"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	PublishedAt *time.Time         `json:"publishedAt" bson:"publishedAt"`
	IsDeleted   bool               `json:"isDeleted" bson:"isDeleted"`
	DeletedAt   *time.Time         `json:"deletedAt" bson:"deletedAt"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsVisible: chưa bị xóa và đã publish, điều kiện hiển thị public
func (b *Blog) IsVisible() bool {
	return !b.IsDeleted && b.IsPublished
}

// OwnerID trả về authorId dạng hex để so sánh với identity của caller
func (b *Blog) OwnerID() string {
	return b.AuthorID.Hex()
}

// BlogUpdate là update expression đã được service dựng sẵn,
// repository chỉ việc dịch sang ngôn ngữ của store
type BlogUpdate struct {
	Title            *string
	Body             *string
	AppendTags       []string  // push từng phần tử, cho phép trùng
	AddSubcategories []string // add-to-set, không trùng
	PublishedAt      time.Time // luôn set, kèm isPublished = true
	UpdatedAt        time.Time
}
