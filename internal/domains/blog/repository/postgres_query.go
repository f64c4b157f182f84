package repository

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/shared/utils"
)

const blogColumns = `id, title, body, author_id, tags, category, subcategory,
	is_published, published_at, is_deleted, deleted_at, created_at, updated_at`

func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Hex()
	}
	return out
}

func buildPublishedQuery() string {
	return fmt.Sprintf(`SELECT %s FROM blogs
		WHERE is_deleted = FALSE AND is_published = TRUE
		ORDER BY created_at`, blogColumns)
}

// buildAnyOfQuery: = ANY cho scalar, && (overlap) cho text[]
func buildAnyOfQuery(c model.AnyOfCriteria) (string, []any) {
	var args utils.ArgList
	var clauses []string

	if len(c.AuthorIDs) > 0 {
		clauses = append(clauses, "author_id = ANY("+args.Add(hexIDs(c.AuthorIDs))+"::text[])")
	}
	if len(c.Tags) > 0 {
		clauses = append(clauses, "tags && "+args.Add(c.Tags)+"::text[]")
	}
	if len(c.Categories) > 0 {
		clauses = append(clauses, "category = ANY("+args.Add(c.Categories)+"::text[])")
	}
	if len(c.Subcategories) > 0 {
		clauses = append(clauses, "subcategory && "+args.Add(c.Subcategories)+"::text[]")
	}

	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE %s ORDER BY created_at`,
		blogColumns, utils.JoinWithOr(clauses))
	return query, args.Values()
}

func buildActiveByIDQuery(id primitive.ObjectID) (string, []any) {
	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE id = $1 AND is_deleted = FALSE`, blogColumns)
	return query, []any{id.Hex()}
}

// buildUpdateQuery: tags nối thêm (cho phép trùng); subcategory chỉ nối
// giá trị chưa có, giữ thứ tự truyền vào
func buildUpdateQuery(id primitive.ObjectID, u *model.BlogUpdate) (string, []any) {
	var args utils.ArgList
	sets := []string{
		"published_at = " + args.Add(u.PublishedAt),
		"is_published = TRUE",
		"updated_at = " + args.Add(u.UpdatedAt),
	}
	if u.Title != nil {
		sets = append(sets, "title = "+args.Add(*u.Title))
	}
	if u.Body != nil {
		sets = append(sets, "body = "+args.Add(*u.Body))
	}
	if len(u.AppendTags) > 0 {
		sets = append(sets, "tags = tags || "+args.Add(u.AppendTags)+"::text[]")
	}
	if len(u.AddSubcategories) > 0 {
		sets = append(sets, fmt.Sprintf(`subcategory = subcategory || ARRAY(
			SELECT s FROM unnest(%s::text[]) WITH ORDINALITY AS t(s, ord)
			WHERE NOT (s = ANY(subcategory))
			ORDER BY ord)`, args.Add(u.AddSubcategories)))
	}

	query := fmt.Sprintf(`UPDATE blogs SET %s
		WHERE id = %s AND is_deleted = FALSE
		RETURNING %s`, strings.Join(sets, ", "), args.Add(id.Hex()), blogColumns)
	return query, args.Values()
}

func buildSoftDeleteByIDQuery(id primitive.ObjectID, at any) (string, []any) {
	query := fmt.Sprintf(`UPDATE blogs SET is_deleted = TRUE, deleted_at = $1, updated_at = $1
		WHERE id = $2 AND is_deleted = FALSE
		RETURNING %s`, blogColumns)
	return query, []any{at, id.Hex()}
}

// buildDeletionQuery: @> (contains) cho "phải có tất cả giá trị"
func buildDeletionQuery(f model.DeleteFilter) (string, []any) {
	var args utils.ArgList
	clauses := []string{"is_deleted = FALSE", "deleted_at IS NULL"}

	if f.AuthorID != nil {
		clauses = append(clauses, "author_id = "+args.Add(f.AuthorID.Hex()))
	}
	if f.Category != nil {
		clauses = append(clauses, "category = "+args.Add(*f.Category))
	}
	if f.IsPublished != nil {
		clauses = append(clauses, "is_published = "+args.Add(*f.IsPublished))
	}
	if len(f.Tags) > 0 {
		clauses = append(clauses, "tags @> "+args.Add(f.Tags)+"::text[]")
	}
	if len(f.Subcategories) > 0 {
		clauses = append(clauses, "subcategory @> "+args.Add(f.Subcategories)+"::text[]")
	}

	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE %s ORDER BY created_at`,
		blogColumns, utils.JoinWithAnd(clauses))
	return query, args.Values()
}

func buildSoftDeleteManyQuery(ids []primitive.ObjectID, at any) (string, []any) {
	return `UPDATE blogs SET is_deleted = TRUE, deleted_at = $1, updated_at = $1
		WHERE id = ANY($2::text[]) AND is_deleted = FALSE`, []any{at, hexIDs(ids)}
}
