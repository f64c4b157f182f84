package model

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/authz"
)

var (
	// Create validation errors (thứ tự trùng với pipeline)
	ErrEmptyCreateBody     = errors.New("can not enter blog without data")
	ErrTitleRequired       = errors.New("title is required")
	ErrBodyRequired        = errors.New("body is required")
	ErrAuthorIDRequired    = errors.New("valid authorId is required")
	ErrTagsRequired        = errors.New("tags are required")
	ErrSubcategoryRequired = errors.New("subcategory is required")
	ErrCategoryRequired    = errors.New("category is required")

	// Update validation errors
	ErrEmptyUpdateBody    = errors.New("enter valid data")
	ErrTitleInvalid       = errors.New("title not valid")
	ErrBodyInvalid        = errors.New("body not valid")
	ErrTagsInvalid        = errors.New("tags not valid")
	ErrSubcategoryInvalid = errors.New("subcategory not valid")

	// Identifier / query errors
	ErrInvalidBlogID       = errors.New("invalid blog id")
	ErrInvalidAuthorFilter = errors.New("enter valid author id")
	ErrInvalidCallerID     = errors.New("not a valid token")
	ErrQueryRequired       = errors.New("query params not found")
	ErrInvalidBody         = errors.New("invalid request body")

	// Business errors
	ErrAuthorNotFound     = errors.New("authorId not found")
	ErrBlogNotFound       = errors.New("no blogs found")
	ErrBlogAlreadyDeleted = errors.New("No such blog exists or blog is deleted")
	ErrNoBlogMatched      = errors.New("no blog found")

	// ErrForbidden re-export để handler không phải import authz
	ErrForbidden = authz.ErrForbidden
)

var badRequestErrors = []error{
	ErrEmptyCreateBody, ErrTitleRequired, ErrBodyRequired, ErrAuthorIDRequired,
	ErrTagsRequired, ErrSubcategoryRequired, ErrCategoryRequired,
	ErrEmptyUpdateBody, ErrTitleInvalid, ErrBodyInvalid, ErrTagsInvalid, ErrSubcategoryInvalid,
	ErrInvalidBlogID, ErrInvalidAuthorFilter, ErrInvalidCallerID, ErrQueryRequired, ErrInvalidBody,
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrBlogNotFound),
		errors.Is(err, ErrBlogAlreadyDeleted),
		errors.Is(err, ErrNoBlogMatched):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorNotFound):
		// author không tồn tại được coi là input sai, không phải 404 của blog
		return http.StatusBadRequest
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch ToHTTPStatus(err) {
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "BLOG_NOT_FOUND"
	case http.StatusBadRequest:
		if errors.Is(err, ErrAuthorNotFound) {
			return "AUTHOR_NOT_FOUND"
		}
		return "BAD_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
