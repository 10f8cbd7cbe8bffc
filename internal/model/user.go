package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultAvatarURL is assigned to accounts created without a profile photo.
const DefaultAvatarURL = "https://cdn-icons-png.flaticon.com/512/149/149071.png"

// User represents a registered account. The password hash is excluded from
// every JSON payload; only the bson mapping carries it.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"  json:"_id"`
	Username     string        `bson:"username"       json:"username"`
	Email        string        `bson:"email"          json:"email"`
	PasswordHash string        `bson:"password_hash"  json:"-"`
	Avatar       string        `bson:"avatar"         json:"avatar"`
	CreatedAt    time.Time     `bson:"created_at"     json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updated_at"     json:"updatedAt"`
}
