package models

import "time"

// Session type, owned by the external session layer. This service never
// creates sessions, it only deletes expired ones.
type Session struct {
	SessionToken string    `json:"session_token" bson:"sessionToken"`
	UserID       string    `json:"user_id" bson:"userId"`
	Expires      time.Time `json:"expires" bson:"expires"`
}

// Custom token cached per session, overwritten on every re-mint
type CustomToken struct {
	SessionToken string    `json:"session_token" bson:"sessionToken"`
	Token        string    `json:"token" bson:"token"`
	Expires      time.Time `json:"expires" bson:"expires"`
}

// Usable reports whether the record is still inside its TTL at the given
// time. The boundary is exclusive, a record expiring exactly now is stale.
func (t CustomToken) Usable(now time.Time) bool {
	return now.Before(t.Expires)
}

// Account provider names accepted on the lookup filter
var Providers = []string{"google", "github", "gmail"}

// Linked provider account, read-only pass-through record
type Account struct {
	UserID      string `json:"user_id" bson:"userId"`
	Provider    string `json:"provider" bson:"provider"`
	Type        string `json:"type" bson:"type"`
	Scope       string `json:"scope" bson:"scope"`
	TokenType   string `json:"token_type" bson:"token_type"`
	AccessToken string `json:"access_token" bson:"access_token"`
	ExpiresAt   int64  `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
}

// User identity document
type User struct {
	ID            string `json:"id" bson:"id"`
	Email         string `json:"email" bson:"email"`
	Name          string `json:"name" bson:"name"`
	Image         string `json:"image" bson:"image"`
	EmailVerified bool   `json:"email_verified" bson:"emailVerified"`
}
