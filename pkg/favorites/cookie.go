package favorites

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"time"
)

const cookieMaxAge = 365 * 24 * time.Hour

// CookieStore keeps values in cookies of one HTTP exchange, the server-side analogue of browser storage
type CookieStore struct {
	r *http.Request
	w http.ResponseWriter
}

// NewCookieStore reads cookies from r and writes updates to w
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{r: r, w: w}
}

// Get decodes the cookie named key
func (s *CookieStore) Get(_ context.Context, key string) ([]byte, error) {
	c, err := s.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return base64.RawURLEncoding.DecodeString(c.Value)
}

// Set writes the cookie named key and makes it visible to later Gets on the same request
func (s *CookieStore) Set(_ context.Context, key string, value []byte) error {
	c := &http.Cookie{
		Name:     key,
		Value:    base64.RawURLEncoding.EncodeToString(value),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(s.w, c)

	cookies := s.r.Cookies()
	s.r.Header.Del("Cookie")
	for _, old := range cookies {
		if old.Name != key {
			s.r.AddCookie(old)
		}
	}
	s.r.AddCookie(&http.Cookie{Name: key, Value: c.Value})
	return nil
}
