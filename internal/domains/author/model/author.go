package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Title hợp lệ của author
const (
	TitleMr   = "Mr"
	TitleMrs  = "Mrs"
	TitleMiss = "Miss"
)

// Author là document trong collection "authors".
// Password là bcrypt hash, không bao giờ serialize ra JSON.
type Author struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FName     string             `json:"fname" bson:"fname"`
	LName     string             `json:"lname" bson:"lname"`
	Title     string             `json:"title" bson:"title"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
