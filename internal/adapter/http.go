package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Hipolitoneto/receitas/internal/config"
	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/models"
)

// recipeSelect embeds the author projection on every recipe row via the
// backend's foreign-key join syntax.
const recipeSelect = "*,author:users!recipes_user_id_fkey(name,avatar_url)"

const avatarBucket = "avatars"

type httpRemoteStore struct {
	client  *resty.Client
	anonKey string

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

// NewFromConfig constructs an HTTP/REST implementation of [RemoteStore] from
// the client backend configuration. It normalises and validates the base URL,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and attaches the anon API key to every request.
//
// Returns an error if backendCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewFromConfig(backendCfg config.ClientBackend, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(backendCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(backendCfg.RequestTimeout)

	return &httpRemoteStore{client: cli, anonKey: backendCfg.AnonKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSession implements [RemoteStore]. It stores the session whose access
// token is attached to the Authorization header of all subsequent requests.
func (h *httpRemoteStore) SetSession(session models.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = session
}

// Session implements [RemoteStore]. It returns the session currently held by
// the adapter, or the zero value if no one is signed in.
func (h *httpRemoteStore) Session() models.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

// authSessionResponse is the token-endpoint response shape of the backend's
// auth subsystem.
type authSessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (r authSessionResponse) toSession() models.Session {
	s := models.Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		UserID:       r.User.ID,
		Email:        r.User.Email,
	}
	if r.ExpiresIn > 0 {
		s.ExpiresAt = time.Now().Add(time.Duration(r.ExpiresIn) * time.Second)
	}
	// fall back to the token claims when the response omitted fields
	_ = s.FillFromToken()
	return s
}

func (h *httpRemoteStore) SignUp(ctx context.Context, email, password string) (models.Session, error) {
	return h.authGrant(ctx, "/auth/v1/signup", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (h *httpRemoteStore) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	return h.authGrant(ctx, "/auth/v1/token?grant_type=password", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (h *httpRemoteStore) RefreshSession(ctx context.Context, refreshToken string) (models.Session, error) {
	session, err := h.authGrant(ctx, "/auth/v1/token?grant_type=refresh_token", map[string]string{
		"refresh_token": refreshToken,
	})
	if err != nil {
		// a rejected refresh token means the whole session is gone
		if resolved := resolveRefreshFailure(err); resolved != nil {
			return models.Session{}, resolved
		}
		return models.Session{}, err
	}
	return session, nil
}

func resolveRefreshFailure(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unauthorized") || strings.Contains(msg, "bad request") {
		return fmt.Errorf("%w: refresh token rejected", ErrSessionExpired)
	}
	return nil
}

func (h *httpRemoteStore) authGrant(ctx context.Context, path string, body map[string]string) (models.Session, error) {
	resp, err := h.baseRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.Session{}, wrapTransportError("auth request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var ar authSessionResponse
	if err = json.Unmarshal(resp.Body(), &ar); err != nil {
		return models.Session{}, fmt.Errorf("decode auth response: %w", err)
	}

	session := ar.toSession()
	h.SetSession(session)
	return session, nil
}

func (h *httpRemoteStore) CurrentIdentity(ctx context.Context) (models.Identity, error) {
	resp, err := h.authedRequest(ctx).Get("/auth/v1/user")
	if err != nil {
		return models.Identity{}, wrapTransportError("current identity request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	var identity models.Identity
	if err = json.Unmarshal(resp.Body(), &identity); err != nil {
		return models.Identity{}, fmt.Errorf("decode identity response: %w", err)
	}
	if identity.ID == "" {
		return models.Identity{}, fmt.Errorf("%w: empty identity", ErrSessionExpired)
	}
	return identity, nil
}

func (h *httpRemoteStore) QueryRecipes(ctx context.Context, query RecipeQuery) ([]models.Recipe, error) {
	req := h.authedRequest(ctx).SetQueryParam("select", recipeSelect)

	if query.OnlyPublic {
		req.SetQueryParam("is_public", "eq.true")
	}
	if !query.PublishedAfter.IsZero() {
		req.SetQueryParam("created_at", "gt."+query.PublishedAfter.UTC().Format(time.RFC3339Nano))
	}
	if term := strings.TrimSpace(query.TitleILike); term != "" {
		req.SetQueryParam("title", "ilike.*"+term+"*")
	}
	if query.OwnerID != "" {
		req.SetQueryParam("user_id", "eq."+query.OwnerID)
	}
	if query.Ascending {
		req.SetQueryParam("order", "created_at.asc")
	} else {
		req.SetQueryParam("order", "created_at.desc")
	}
	if query.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(query.Limit))
	}

	resp, err := req.Get("/rest/v1/recipes")
	if err != nil {
		return nil, wrapTransportError("query recipes request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err = json.Unmarshal(resp.Body(), &recipes); err != nil {
		return nil, fmt.Errorf("decode recipes response: %w", err)
	}
	return recipes, nil
}

func (h *httpRemoteStore) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "application/vnd.pgrst.object+json").
		SetQueryParam("select", recipeSelect).
		SetQueryParam("id", "eq."+id).
		Get("/rest/v1/recipes")
	if err != nil {
		return models.Recipe{}, wrapTransportError("get recipe request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	var recipe models.Recipe
	if err = json.Unmarshal(resp.Body(), &recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("decode recipe response: %w", err)
	}
	return recipe, nil
}

func (h *httpRemoteStore) InsertRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/vnd.pgrst.object+json").
		SetHeader("Prefer", "return=representation").
		SetBody(insertRecipeBody(recipe)).
		Post("/rest/v1/recipes")
	if err != nil {
		return models.Recipe{}, wrapTransportError("insert recipe request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	var stored models.Recipe
	if err = json.Unmarshal(resp.Body(), &stored); err != nil {
		return models.Recipe{}, fmt.Errorf("decode inserted recipe: %w", err)
	}
	return stored, nil
}

func (h *httpRemoteStore) UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/vnd.pgrst.object+json").
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+recipe.ID).
		SetBody(updateRecipeBody(recipe)).
		Patch("/rest/v1/recipes")
	if err != nil {
		return models.Recipe{}, wrapTransportError("update recipe request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	var stored models.Recipe
	if err = json.Unmarshal(resp.Body(), &stored); err != nil {
		return models.Recipe{}, fmt.Errorf("decode updated recipe: %w", err)
	}
	return stored, nil
}

func (h *httpRemoteStore) DeleteRecipe(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		Delete("/rest/v1/recipes")
	if err != nil {
		return wrapTransportError("delete recipe request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	// Row-level authorization answers 200 with zero affected rows instead of
	// an error. Surface that as not-found so the caller does not report a
	// successful delete that never happened.
	var deleted []models.Recipe
	if err = json.Unmarshal(resp.Body(), &deleted); err == nil && len(deleted) == 0 {
		return fmt.Errorf("%w: recipe %s", ErrNotFound, id)
	}
	return nil
}

func (h *httpRemoteStore) GetProfile(ctx context.Context, userID string) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "application/vnd.pgrst.object+json").
		SetQueryParam("select", "id,email,name,avatar_url,is_admin,created_at").
		SetQueryParam("id", "eq."+userID).
		Get("/rest/v1/users")
	if err != nil {
		return models.User{}, wrapTransportError("get profile request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}
	return user, nil
}

func (h *httpRemoteStore) InsertProfile(ctx context.Context, user models.User) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"avatar_url": user.AvatarURL,
		}).
		Post("/rest/v1/users")
	if err != nil {
		return wrapTransportError("insert profile request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteStore) UpdateProfile(ctx context.Context, user models.User) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("id", "eq."+user.ID).
		SetBody(map[string]any{
			"name":       user.Name,
			"avatar_url": user.AvatarURL,
		}).
		Patch("/rest/v1/users")
	if err != nil {
		return wrapTransportError("update profile request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteStore) UploadAvatar(ctx context.Context, userID string, data []byte, contentType string) (string, error) {
	objectPath := fmt.Sprintf("%s/%s/avatar-%d%s", avatarBucket, userID, time.Now().Unix(), extensionFor(contentType))

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(data).
		Post("/storage/v1/object/" + objectPath)
	if err != nil {
		return "", wrapTransportError("upload avatar request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return h.client.BaseURL + "/storage/v1/object/public/" + objectPath, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// insertRecipeBody keeps the write payload to columns the client owns; the
// author projection and server timestamps never travel upstream.
func insertRecipeBody(r models.Recipe) map[string]any {
	body := map[string]any{
		"user_id":     r.OwnerID,
		"title":       r.Title,
		"ingredients": r.Ingredients,
		"preparation": r.Preparation,
		"is_public":   r.IsPublic,
	}
	if r.ID != "" {
		body["id"] = r.ID
	}
	if r.ImageURL != "" {
		body["image_url"] = r.ImageURL
	}
	return body
}

func updateRecipeBody(r models.Recipe) map[string]any {
	return map[string]any{
		"title":       r.Title,
		"ingredients": r.Ingredients,
		"preparation": r.Preparation,
		"is_public":   r.IsPublic,
		"image_url":   r.ImageURL,
		"updated_at":  time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func (h *httpRemoteStore) baseRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.anonKey != "" {
		req.SetHeader("apikey", h.anonKey)
	}
	return req
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.baseRequest(ctx)
	if token := h.Session().AccessToken; token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
