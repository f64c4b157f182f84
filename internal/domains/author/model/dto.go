package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-backend/internal/shared/utils"
)

// RegisterRequest - POST /authors
type RegisterRequest struct {
	FName    string `json:"fname"`
	LName    string `json:"lname"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FName,
			validation.Required.Error("fname is required"),
			utils.NotBlank,
		),
		validation.Field(&r.LName,
			validation.Required.Error("lname is required"),
			utils.NotBlank,
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.In(TitleMr, TitleMrs, TitleMiss).Error("title must be one of Mr, Mrs, Miss"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.RuneLength(8, 15).Error("password must be 8-15 characters"),
		),
	)
}

// NormalizedEmail: email so sánh không phân biệt hoa thường
func (r RegisterRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// LoginRequest - POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r LoginRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// LoginResponse - token dùng cho header x-api-key
type LoginResponse struct {
	Token    string `json:"token"`
	AuthorID string `json:"authorId"`
}
