package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/blog/model"
)

func publishedFilter() bson.M {
	return bson.M{"isDeleted": false, "isPublished": true}
}

// anyOfFilter: $or chỉ gồm các field có giá trị; mỗi field là $in
// (với array field, $in khớp khi giao nhau khác rỗng)
func anyOfFilter(c model.AnyOfCriteria) bson.M {
	or := bson.A{}
	if len(c.AuthorIDs) > 0 {
		or = append(or, bson.M{"authorId": bson.M{"$in": c.AuthorIDs}})
	}
	if len(c.Tags) > 0 {
		or = append(or, bson.M{"tags": bson.M{"$in": c.Tags}})
	}
	if len(c.Categories) > 0 {
		or = append(or, bson.M{"category": bson.M{"$in": c.Categories}})
	}
	if len(c.Subcategories) > 0 {
		or = append(or, bson.M{"subcategory": bson.M{"$in": c.Subcategories}})
	}
	return bson.M{"$or": or}
}

func activeByIDFilter(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "isDeleted": false}
}

// updateDocument dịch BlogUpdate sang $set / $push / $addToSet
func updateDocument(u *model.BlogUpdate) bson.M {
	set := bson.M{
		"publishedAt": u.PublishedAt,
		"isPublished": true,
		"updatedAt":   u.UpdatedAt,
	}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Body != nil {
		set["body"] = *u.Body
	}

	doc := bson.M{"$set": set}
	if len(u.AppendTags) > 0 {
		doc["$push"] = bson.M{"tags": bson.M{"$each": u.AppendTags}}
	}
	if len(u.AddSubcategories) > 0 {
		doc["$addToSet"] = bson.M{"subcategory": bson.M{"$each": u.AddSubcategories}}
	}
	return doc
}

func softDeleteDocument(at time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"isDeleted": true,
		"deletedAt": at,
		"updatedAt": at,
	}}
}

// deletionFilter: luôn loại document đã xóa; tags/subcategory dùng $all
func deletionFilter(f model.DeleteFilter) bson.M {
	filter := bson.M{"isDeleted": false, "deletedAt": nil}
	if f.AuthorID != nil {
		filter["authorId"] = *f.AuthorID
	}
	if f.Category != nil {
		filter["category"] = *f.Category
	}
	if f.IsPublished != nil {
		filter["isPublished"] = *f.IsPublished
	}
	if len(f.Tags) > 0 {
		filter["tags"] = bson.M{"$all": f.Tags}
	}
	if len(f.Subcategories) > 0 {
		filter["subcategory"] = bson.M{"$all": f.Subcategories}
	}
	return filter
}

func idsFilter(ids []primitive.ObjectID) bson.M {
	return bson.M{"_id": bson.M{"$in": ids}, "isDeleted": false}
}
