package utils

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidObjectID = errors.New("invalid identifier")

// ValidateObjectID kiểm tra id là chuỗi hex 24 ký tự (Mongo ObjectID)
func ValidateObjectID(id string) error {
	return validation.Validate(id, validation.Required, is.MongoID)
}

func IsValidObjectID(id string) bool {
	return ValidateObjectID(id) == nil
}

// ParseObjectID validate rồi convert sang primitive.ObjectID
func ParseObjectID(id string) (primitive.ObjectID, error) {
	if err := ValidateObjectID(id); err != nil {
		return primitive.NilObjectID, ErrInvalidObjectID
	}
	oid, err := primitive.ObjectIDFromHex(strings.ToLower(id))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidObjectID
	}
	return oid, nil
}

// NotBlank: string (hoặc *string) phải có ký tự khác khoảng trắng
var NotBlank = validation.By(func(value interface{}) error {
	v, _ := validation.Indirect(value)
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
})
