package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/innovatepam/portal/internal/application/services"
	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/ports"
)

// singleUserRepo serves one stored account, copying on read the way the SQL
// repository returns fresh rows.
type singleUserRepo struct {
	user *entities.User
}

func (r *singleUserRepo) Create(context.Context, *entities.User) error { return nil }
func (r *singleUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, entities.ErrUserNotFound
	}
	cp := *r.user
	return &cp, nil
}
func (r *singleUserRepo) GetByEmail(context.Context, string) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}
func (r *singleUserRepo) Update(context.Context, *entities.User) error { return nil }
func (r *singleUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if r.user == nil || r.user.ID != id {
		return entities.ErrUserNotFound
	}
	r.user.PasswordHash = passwordHash
	return nil
}
func (r *singleUserRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (r *singleUserRepo) List(context.Context, ports.UserFilter) ([]*entities.User, error) {
	return nil, nil
}
func (r *singleUserRepo) Count(context.Context) (int64, error) { return 0, nil }

type structValidator struct {
	validate *validator.Validate
}

func (v *structValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newPasswordChangeContext(t *testing.T, userID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &structValidator{validate: validator.New()}
	req := httptest.NewRequest(http.MethodPut, "/api/users/me/password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID.String())
	c.Set("user_role", string(entities.UserRoleSubmitter))
	return c, rec
}

func seededPasswordUser(t *testing.T, password string) (*singleUserRepo, uuid.UUID) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	id := uuid.New()
	repo := &singleUserRepo{user: &entities.User{
		ID:           id,
		Email:        "pw@example.com",
		PasswordHash: string(hashed),
		Role:         entities.UserRoleSubmitter,
		IsActive:     true,
	}}
	return repo, id
}

func TestChangePasswordEndpoint(t *testing.T) {
	repo, userID := seededPasswordUser(t, "OldPass1!")
	h := NewUserHandler(services.NewUserService(repo, testLogger()), testLogger())

	c, rec := newPasswordChangeContext(t, userID,
		`{"current_password": "OldPass1!", "new_password": "NewPass2!"}`)

	require.NoError(t, h.ChangePassword(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Password updated successfully")

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.user.PasswordHash), []byte("NewPass2!")))
}

func TestChangePasswordEndpointWrongCurrent(t *testing.T) {
	repo, userID := seededPasswordUser(t, "RealPass1!")
	h := NewUserHandler(services.NewUserService(repo, testLogger()), testLogger())

	c, _ := newPasswordChangeContext(t, userID,
		`{"current_password": "WrongPass!", "new_password": "NewPass2!"}`)

	err := h.ChangePassword(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Contains(t, strings.ToLower(he.Message.(string)), "incorrect")

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.user.PasswordHash), []byte("RealPass1!")))
}

func TestChangePasswordEndpointRejectsReuse(t *testing.T) {
	repo, userID := seededPasswordUser(t, "SamePass1!")
	h := NewUserHandler(services.NewUserService(repo, testLogger()), testLogger())

	c, _ := newPasswordChangeContext(t, userID,
		`{"current_password": "SamePass1!", "new_password": "SamePass1!"}`)

	err := h.ChangePassword(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Contains(t, strings.ToLower(he.Message.(string)), "differ")
}
