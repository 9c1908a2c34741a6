package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a coordinator account.
type User struct {
	ID          int64     `bson:"_id" json:"id"`
	Username    string    `bson:"username" json:"username"`
	Password    string    `bson:"password" json:"-"` // bcrypt hash, never serialized
	CompanyName string    `bson:"company_name" json:"company_name"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

func (u *User) GetID() int64 { return u.ID }
func (u *User) SetID(id int64) { u.ID = id }

func (u *User) GetCreatedAt() time.Time { return u.CreatedAt }

func (u *User) SetCreatedAt(t time.Time) {
	u.CreatedAt = t
	u.UpdatedAt = t
}

// Token types.
const (
	TokenTypeRefresh   = "refresh"
	TokenTypeBlacklist = "blacklist"
)

// Token represents a refresh token or blacklisted token.
type Token struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    int64              `bson:"user_id" json:"user_id"`
	Token     string             `bson:"token" json:"token"`
	Type      string             `bson:"type" json:"type"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
