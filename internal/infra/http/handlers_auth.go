package http

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateCookieName = "oauth_state"
	stateCookieAge  = 600
	tokenCookieAge  = 3600
)

// cookieSecure marks credential cookies Secure when configured to, or
// when the request demonstrably arrived over TLS (directly or via a
// forwarding proxy).
func (s *Server) cookieSecure(c *gin.Context) bool {
	if s.cfg.CookieSecure {
		return true
	}
	if c.Request.TLS != nil {
		return true
	}
	return c.GetHeader("X-Forwarded-Proto") == "https"
}

func (s *Server) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURL,
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

// handleLogin starts the authorization-code flow: a random state value
// goes into a short-lived cookie and the client is sent to Google.
func (s *Server) handleLogin(c *gin.Context) {
	if s.cfg.GoogleClientID == "" || s.cfg.GoogleClientSecret == "" {
		writeErrorCode(c, http.StatusInternalServerError, "AUTH_CONFIG_ERROR", "login is not configured")
		return
	}
	state, err := randomState()
	if err != nil {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	c.SetCookie(stateCookieName, state, stateCookieAge, "/", "", s.cookieSecure(c), true)
	c.Redirect(http.StatusFound, s.oauthConfig().AuthCodeURL(state))
}

// handleCallback exchanges the code for tokens and stores the ID token
// in the session cookie the Authorization Gate falls back to.
func (s *Server) handleCallback(c *gin.Context) {
	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || c.Query("state") != state {
		writeErrorCode(c, http.StatusBadRequest, "LOGIN_FAILED", "state mismatch")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", s.cookieSecure(c), true)
	code := c.Query("code")
	if code == "" {
		writeErrorCode(c, http.StatusBadRequest, "LOGIN_FAILED", "missing authorization code")
		return
	}
	token, err := s.oauthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		writeErrorCode(c, http.StatusBadRequest, "LOGIN_FAILED", "code exchange failed")
		return
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		writeErrorCode(c, http.StatusBadRequest, "LOGIN_FAILED", "no id token in response")
		return
	}
	c.SetCookie(tokenCookieName, idToken, tokenCookieAge, "/", "", s.cookieSecure(c), true)
	if s.cfg.FrontendURL != "" {
		c.Redirect(http.StatusFound, s.cfg.FrontendURL)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login succeeded"})
}

func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie(tokenCookieName, "", -1, "/", "", s.cookieSecure(c), true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (s *Server) handleUserInfo(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	})
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
