package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// PublicUser - поля пользователя, которые можно отдавать наружу
type PublicUser struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	OwnerID   string    `json:"ownerId" db:"owner_id"`
	Content   string    `json:"content" db:"content"`
	ImageURL  *string   `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FeedPost - пост, обогащённый именем владельца для ленты
type FeedPost struct {
	Post
	OwnerUsername string `json:"ownerUsername"`
}
