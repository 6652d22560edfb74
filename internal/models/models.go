package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONList — список строк, который хранится в jsonb-колонке
type JSONList []string

func (l JSONList) Value() (driver.Value, error) {
	if l == nil {
		l = JSONList{}
	}
	return json.Marshal(l)
}

func (l *JSONList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = JSONList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("неподдерживаемый тип для JSONList: %T", src)
	}
}

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	FirstName              string    `json:"firstName" db:"first_name"`
	LastName               string    `json:"lastName" db:"last_name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	ResetToken             string    `json:"-" db:"reset_token"`
	GoogleID               *string   `json:"googleId,omitempty" db:"google_id"`
	ProfilePicture         string    `json:"profilePicture" db:"profile_picture"`
	MentionCount           int       `json:"mentionCount" db:"mention_count"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time `json:"updatedAt" db:"updated_at"`
}

type Post struct {
	PostID         string    `json:"postId" db:"post_id"`
	UserID         string    `json:"userId" db:"user_id"`
	Description    string    `json:"description" db:"description"`
	Images         JSONList  `json:"images" db:"images"`
	LikeCount      int       `json:"likeCount" db:"like_count"`
	PinnedPost     bool      `json:"pinnedPost" db:"pinned_post"`
	Hashtags       JSONList  `json:"hashtags" db:"hashtags"`
	MentionedUsers JSONList  `json:"mentionedUsers" db:"mentioned_users"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type Comment struct {
	CommentID   string    `json:"commentId" db:"comment_id"`
	PostID      string    `json:"postId" db:"post_id"`
	UserID      string    `json:"userId" db:"user_id"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Mention — связующая запись "пост упоминает пользователя", создаётся вместе с постом
type Mention struct {
	MentionID       string    `json:"mentionId" db:"mention_id"`
	PostID          string    `json:"postId" db:"post_id"`
	MentionedUserID string    `json:"mentionedUserId" db:"mentioned_user_id"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type Nomination struct {
	NominationID           string    `json:"nominationId" db:"nomination_id"`
	NominationType         string    `json:"nominationType" db:"nomination_type"`
	PhotoURL               string    `json:"photoUrl" db:"photo_url"`
	Description            string    `json:"description" db:"description"`
	LastNominationDay      time.Time `json:"lastNominationDay" db:"last_nomination_day"`
	WinnerAnnouncementDate time.Time `json:"winnerAnnouncementDate" db:"winner_announcement_date"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type NominationVote struct {
	VoteID          string    `json:"voteId" db:"vote_id"`
	UserID          string    `json:"userId" db:"user_id"`
	NominatedUserID string    `json:"nominatedUserId" db:"nominated_user_id"`
	NominationID    string    `json:"nominationId" db:"nomination_id"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// TopNominatedUser — агрегат "лидер голосования" с публичными полями кандидата
type TopNominatedUser struct {
	UserID         string `json:"userId" db:"user_id"`
	FirstName      string `json:"firstName" db:"first_name"`
	LastName       string `json:"lastName" db:"last_name"`
	Email          string `json:"email" db:"email"`
	ProfilePicture string `json:"profilePicture" db:"profile_picture"`
	Votes          int    `json:"votes" db:"votes"`
}
