package session

import (
	"context"
	"net/http"
	"time"

	"github.com/fotoflo/cloudhunter/app/queries"
	"go.mongodb.org/mongo-driver/mongo"
)

// Cookie names carrying the session token. The secure name is set on TLS
// deployments, the plain one everywhere else, so reads try both.
const (
	SecureCookieName = "__Secure-next-auth.session-token"
	CookieName       = "next-auth.session-token"
)

// User is the identity attached to a resolved session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Session is a resolved, still-valid session for an inbound request.
type Session struct {
	Token   string    `json:"session_token"`
	Expires time.Time `json:"expires"`
	User    User      `json:"user"`
}

// Validator resolves the caller's session from an inbound request.
// A nil session with a nil error means no valid session was found.
type Validator interface {
	FromRequest(ctx context.Context, r *http.Request) (*Session, error)
}

// TokenFromRequest returns the session token cookie value, preferring the
// secure cookie name and falling back to the non-secure one.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SecureCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// StoreValidator checks the session token against the session collection
// and loads the owning user for the identity fields.
type StoreValidator struct {
	sessions *queries.SessionQueries
	users    *queries.UserQueries
}

func NewStoreValidator(sessions *queries.SessionQueries, users *queries.UserQueries) *StoreValidator {
	return &StoreValidator{sessions: sessions, users: users}
}

func (v *StoreValidator) FromRequest(ctx context.Context, r *http.Request) (*Session, error) {
	token := TokenFromRequest(r)
	if token == "" {
		return nil, nil
	}

	record, err := v.sessions.Get(ctx, token)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// A session past its expiry is no session at all, even if the reaper
	// has not removed the document yet.
	if !time.Now().Before(record.Expires) {
		return nil, nil
	}

	user, err := v.users.Get(ctx, record.UserID)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:   token,
		Expires: record.Expires,
		User: User{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Image: user.Image,
		},
	}, nil
}
