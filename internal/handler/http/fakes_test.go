package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-catalog/internal/config"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/service"
	"github.com/MKhiriev/go-recipe-catalog/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type mockUserSvc struct {
	createUserFn    func(ctx context.Context, user models.User) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

func (m *mockUserSvc) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserSvc) CreateSuperuser(ctx context.Context, user models.User) (models.User, error) {
	return user, nil
}

func (m *mockUserSvc) Authenticate(context.Context, string, string) (models.User, bool, error) {
	return models.User{}, false, nil
}

func (m *mockUserSvc) GetUser(_ context.Context, userID int64) (models.User, error) {
	return models.User{UserID: userID}, nil
}

func (m *mockUserSvc) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, update)
	}
	return models.User{UserID: userID}, nil
}

type mockAuthSvc struct {
	issueTokenFn func(ctx context.Context, email, password string) (models.Token, error)
	resolveFn    func(ctx context.Context, key string) (models.User, error)
}

func (m *mockAuthSvc) IssueToken(ctx context.Context, email, password string) (models.Token, error) {
	if m.issueTokenFn != nil {
		return m.issueTokenFn(ctx, email, password)
	}
	return models.Token{}, nil
}

func (m *mockAuthSvc) Resolve(ctx context.Context, key string) (models.User, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, key)
	}
	return testUser, nil
}

type mockLabelSvc struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Label, error)
	createFn func(ctx context.Context, userID int64, input models.LabelInput) (models.Label, error)
	getFn    func(ctx context.Context, userID, labelID int64) (models.Label, error)
	updateFn func(ctx context.Context, userID, labelID int64, update models.LabelUpdate, partial bool) (models.Label, error)
	deleteFn func(ctx context.Context, userID, labelID int64) error
}

func (m *mockLabelSvc) List(ctx context.Context, userID int64) ([]models.Label, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockLabelSvc) Create(ctx context.Context, userID int64, input models.LabelInput) (models.Label, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, input)
	}
	return models.Label{}, nil
}

func (m *mockLabelSvc) Get(ctx context.Context, userID, labelID int64) (models.Label, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, labelID)
	}
	return models.Label{}, nil
}

func (m *mockLabelSvc) Update(ctx context.Context, userID, labelID int64, update models.LabelUpdate, partial bool) (models.Label, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, labelID, update, partial)
	}
	return models.Label{}, nil
}

func (m *mockLabelSvc) Delete(ctx context.Context, userID, labelID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, labelID)
	}
	return nil
}

type mockRecipeSvc struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Recipe, error)
	getFn    func(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	createFn func(ctx context.Context, userID int64, input models.RecipeInput) (models.Recipe, error)
	updateFn func(ctx context.Context, userID, recipeID int64, update models.RecipeUpdate, partial bool) (models.Recipe, error)
	deleteFn func(ctx context.Context, userID, recipeID int64) error
}

func (m *mockRecipeSvc) List(ctx context.Context, userID int64) ([]models.Recipe, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockRecipeSvc) Get(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, recipeID)
	}
	return models.Recipe{}, nil
}

func (m *mockRecipeSvc) Create(ctx context.Context, userID int64, input models.RecipeInput) (models.Recipe, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, input)
	}
	return models.Recipe{}, nil
}

func (m *mockRecipeSvc) Update(ctx context.Context, userID, recipeID int64, update models.RecipeUpdate, partial bool) (models.Recipe, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, recipeID, update, partial)
	}
	return models.Recipe{}, nil
}

func (m *mockRecipeSvc) Delete(ctx context.Context, userID, recipeID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, recipeID)
	}
	return nil
}

type mockAppInfoSvc struct {
	healthErr error
}

func (m *mockAppInfoSvc) GetAppVersion(context.Context) string { return "test-version" }

func (m *mockAppInfoSvc) CheckHealth(context.Context) error { return m.healthErr }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testToken = "0123456789abcdef0123456789abcdef01234567"

var testUser = models.User{UserID: 1, Email: "user@example.com", Name: "Test User", IsActive: true}

// newTestServices returns services backed by empty fakes. Tests replace the
// fields they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		UserService:       &mockUserSvc{},
		AuthService:       &mockAuthSvc{},
		TagService:        &mockLabelSvc{},
		IngredientService: &mockLabelSvc{},
		RecipeService:     &mockRecipeSvc{},
		AppInfoService:    &mockAppInfoSvc{},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

// doRequest sends body (marshaled to JSON unless it is a string) through
// router. Authenticated requests carry testToken.
func doRequest(t *testing.T, router http.Handler, method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(b))
		reader = buf
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
