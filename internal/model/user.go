package model

// User is the profile record as served by /api/users/me and embedded
// in the verify response.
type User struct {
	ID         string   `json:"id"`
	Identifier string   `json:"identifier"`
	Name       string   `json:"name"`
	Headline   string   `json:"headline"`
	Location   string   `json:"location"`
	AvatarURL  string   `json:"avatarURL"`
	Skills     []string `json:"skills"`
}

// ProfileUpdate carries the PUT /api/users/me body.
// Nil fields are left unchanged by the server.
type ProfileUpdate struct {
	Name      *string   `json:"name,omitempty"`
	Headline  *string   `json:"headline,omitempty"`
	Location  *string   `json:"location,omitempty"`
	AvatarURL *string   `json:"avatarURL,omitempty"`
	Skills    *[]string `json:"skills,omitempty"`
}
