package model

import "time"

// Author is the denormalized author copy embedded in posts and comments.
// It is a snapshot taken at fetch time, not a live reference.
type Author struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Headline  string `json:"headline"`
	AvatarURL string `json:"avatarURL"`
}

type Post struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	LikeCount    int       `json:"likeCount"`
	Liked        bool      `json:"liked"`
	CommentCount int       `json:"commentCount"`
	Author       Author    `json:"author"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Text      string    `json:"text"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostPage is one page of GET /api/posts. An empty NextCursor marks the
// terminal page.
type PostPage struct {
	Posts      []Post `json:"posts"`
	NextCursor string `json:"nextCursor,omitempty"`
}

type CommentList struct {
	Comments []Comment `json:"comments"`
}

// LikeResult is the authoritative counter returned by POST /api/posts/:id/like.
type LikeResult struct {
	PostID    string `json:"postId"`
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"likeCount"`
}
