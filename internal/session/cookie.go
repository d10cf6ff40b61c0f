// Package session owns the portal's client session state and its cookie
// boundary. Persistence is an explicit encode/decode step, never a side
// effect of state changes.
package session

import (
	"encoding/json"
	"net/url"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "portal_auth_state"

	// The shell keeps a session alive for a week.
	cookieMaxAge = 7 * 24 * 60 * 60
)

type UserInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type State struct {
	IsAuthenticated bool     `json:"isAuthenticated"`
	Role            string   `json:"role"`
	Token           string   `json:"token"`
	User            UserInfo `json:"user"`
}

// Encode serializes the state the way the shell stores it: URL-encoded JSON.
func Encode(s State) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(raw)), nil
}

func Decode(value string) (State, error) {
	raw, err := url.QueryUnescape(value)
	if err != nil {
		return State{}, err
	}
	var s State
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return State{}, err
	}
	return s, nil
}

// Write sets the session cookie on the response.
func Write(c *gin.Context, s State) error {
	value, err := Encode(s)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, value, cookieMaxAge, "/", "", false, false)
	return nil
}

// Clear expires the session cookie, used on logout and forced 401 logout.
func Clear(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, false)
}

// Read returns the decoded session state, ok=false when the cookie is
// missing or unreadable.
func Read(c *gin.Context) (State, bool) {
	value, err := c.Cookie(CookieName)
	if err != nil {
		return State{}, false
	}
	s, err := Decode(value)
	if err != nil {
		return State{}, false
	}
	return s, true
}
