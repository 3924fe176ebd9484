package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/models"
	"github.com/go-resty/resty/v2"
)

const (
	apiPrefix      = "/api"
	defaultTimeout = 15 * time.Second
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. address may omit the scheme, "http" is assumed then.
// A non-positive timeout falls back to 15 seconds.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL + apiPrefix).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Health implements [ServerAdapter]. A 503 answer still carries the
// version, so the decoded status is returned along with the error.
func (h *httpServerAdapter) Health(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		SetError(&status).
		Get("/health")
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health request: %w", err)
	}

	return status, mapHTTPError(resp)
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(registerRequest{Email: user.Email, Password: user.Password, Name: user.Name}).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&token).
		Post("/token")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	h.SetToken(token.Key)
	h.logger.Debug().Str("func", "httpServerAdapter.Login").Msg("token obtained")
	return token, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetBody(update).SetResult(&user).Patch("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) ListLabels(ctx context.Context, kind models.LabelKind) ([]models.Label, error) {
	path, err := labelsPath(kind)
	if err != nil {
		return nil, err
	}

	var labels []models.Label
	resp, err := h.authedRequest(ctx).SetResult(&labels).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return labels, nil
}

func (h *httpServerAdapter) CreateLabel(ctx context.Context, kind models.LabelKind, input models.LabelInput) (models.Label, error) {
	path, err := labelsPath(kind)
	if err != nil {
		return models.Label{}, err
	}

	var label models.Label
	resp, err := h.authedRequest(ctx).SetBody(input).SetResult(&label).Post(path)
	if err != nil {
		return models.Label{}, fmt.Errorf("create %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Label{}, err
	}

	return label, nil
}

func (h *httpServerAdapter) DeleteLabel(ctx context.Context, kind models.LabelKind, labelID int64) error {
	path, err := labelsPath(kind)
	if err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx).Delete(path + "/" + strconv.FormatInt(labelID, 10))
	if err != nil {
		return fmt.Errorf("delete %s request: %w", kind, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var items []recipeResponse

	resp, err := h.authedRequest(ctx).SetResult(&items).Get("/recipes")
	if err != nil {
		return nil, fmt.Errorf("list recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, 0, len(items))
	for _, item := range items {
		recipes = append(recipes, item.toModel())
	}
	return recipes, nil
}

func (h *httpServerAdapter) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	var item recipeResponse

	resp, err := h.authedRequest(ctx).SetResult(&item).Get(recipePath(recipeID))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return item.toModel(), nil
}

func (h *httpServerAdapter) CreateRecipe(ctx context.Context, input models.RecipeInput) (models.Recipe, error) {
	var item recipeResponse

	resp, err := h.authedRequest(ctx).SetBody(input).SetResult(&item).Post("/recipes")
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return item.toModel(), nil
}

func (h *httpServerAdapter) UpdateRecipe(ctx context.Context, recipeID int64, update models.RecipeUpdate, partial bool) (models.Recipe, error) {
	var item recipeResponse

	req := h.authedRequest(ctx).SetBody(update).SetResult(&item)

	var resp *resty.Response
	var err error
	if partial {
		resp, err = req.Patch(recipePath(recipeID))
	} else {
		resp, err = req.Put(recipePath(recipeID))
	}
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return item.toModel(), nil
}

func (h *httpServerAdapter) DeleteRecipe(ctx context.Context, recipeID int64) error {
	resp, err := h.authedRequest(ctx).Delete(recipePath(recipeID))
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Token "+token)
	}
	return req
}

func labelsPath(kind models.LabelKind) (string, error) {
	switch kind {
	case models.TagLabel:
		return "/tags", nil
	case models.IngredientLabel:
		return "/ingredients", nil
	default:
		return "", fmt.Errorf("unknown label kind %q", kind)
	}
}

func recipePath(recipeID int64) string {
	return "/recipes/" + strconv.FormatInt(recipeID, 10)
}
