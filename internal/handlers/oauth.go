package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pleone55/CS493-Final/internal/config"
	"github.com/pleone55/CS493-Final/internal/constants"
	apierrors "github.com/pleone55/CS493-Final/internal/errors"
	"github.com/pleone55/CS493-Final/internal/models"
	"github.com/pleone55/CS493-Final/internal/repository"
	"github.com/pleone55/CS493-Final/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const defaultProfileURL = "https://people.googleapis.com/v1/people/me?personFields=names"

// OAuthHandler drives the authorization-code flow against the identity
// provider and provisions User records on first login. Correlation state
// and the exchanged token live in the per-flow session, so concurrent
// logins do not interfere with each other.
type OAuthHandler struct {
	oauth      *oauth2.Config
	users      repository.UserRepository
	profileURL string
	client     *http.Client
}

func NewOAuthHandler(cfg *config.Config, users repository.UserRepository) *OAuthHandler {
	return &OAuthHandler{
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"profile"},
			Endpoint:     google.Endpoint,
		},
		users:      users,
		profileURL: defaultProfileURL,
		client:     http.DefaultClient,
	}
}

// Home renders the landing page with the login link
func (h *OAuthHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{})
}

// Authorize starts the flow: stores a fresh correlation state in the
// session and redirects to the provider's consent screen.
func (h *OAuthHandler) Authorize(c *gin.Context) {
	state, err := utils.GenerateState(constants.StateLength)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyState, state)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

// Callback receives the authorization code, checks the correlation state
// and exchanges the code for tokens.
func (h *OAuthHandler) Callback(c *gin.Context) {
	session := sessions.Default(c)
	saved, _ := session.Get(constants.SessionKeyState).(string)
	if saved == "" || c.Query("state") != saved {
		apierrors.InternalError(c, "")
		return
	}
	session.Delete(constants.SessionKeyState)

	token, err := h.oauth.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	session.Set(constants.SessionKeyToken, token.AccessToken)
	if idToken, ok := token.Extra("id_token").(string); ok {
		session.Set(constants.SessionKeyIDToken, idToken)
	}
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.Redirect(http.StatusFound, "/granted")
}

// Granted fetches the user's profile with the exchanged token, creates the
// User record unless the uniqueId is already registered, and renders the
// confirmation view.
func (h *OAuthHandler) Granted(c *gin.Context) {
	session := sessions.Default(c)
	accessToken, _ := session.Get(constants.SessionKeyToken).(string)
	if accessToken == "" {
		apierrors.InternalError(c, "")
		return
	}
	idToken, _ := session.Get(constants.SessionKeyIDToken).(string)

	profile, err := h.fetchProfile(c.Request.Context(), accessToken)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	view := gin.H{
		"firstName": profile.FirstName,
		"lastName":  profile.LastName,
		"uniqueId":  profile.UniqueID,
		"idToken":   idToken,
	}

	_, err = h.users.FindByUniqueID(profile.UniqueID)
	switch {
	case err == nil:
		// Duplicate uniqueId is not overwritten, just reported.
		view["loggedIn"] = fmt.Sprintf("User with Unique Id of %s already exists. User is logged in", profile.UniqueID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		user := &models.User{
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			UniqueID:  profile.UniqueID,
		}
		if err := h.users.Create(user); err != nil {
			apierrors.InternalError(c, "")
			return
		}
	default:
		apierrors.InternalError(c, "")
		return
	}

	c.HTML(http.StatusOK, "granted.tmpl", view)
}

type oauthProfile struct {
	FirstName string
	LastName  string
	UniqueID  string
}

func (h *OAuthHandler) fetchProfile(ctx context.Context, accessToken string) (*oauthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.profileURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile endpoint returned status %d", res.StatusCode)
	}

	var person struct {
		Names []struct {
			GivenName  string `json:"givenName"`
			FamilyName string `json:"familyName"`
			Metadata   struct {
				Source struct {
					ID string `json:"id"`
				} `json:"source"`
			} `json:"metadata"`
		} `json:"names"`
	}
	if err := json.NewDecoder(res.Body).Decode(&person); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if len(person.Names) == 0 {
		return nil, errors.New("profile has no names")
	}

	return &oauthProfile{
		FirstName: person.Names[0].GivenName,
		LastName:  person.Names[0].FamilyName,
		UniqueID:  person.Names[0].Metadata.Source.ID,
	}, nil
}
