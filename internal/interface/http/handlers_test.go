package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/tender-marketplace/internal/application"
	"github.com/oksasatya/tender-marketplace/internal/infrastructure/memory"
	"github.com/oksasatya/tender-marketplace/internal/interface/middleware"
	"github.com/oksasatya/tender-marketplace/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

type recordingStore struct {
	paths  []string
	bodies []string
	err    error
}

func (s *recordingStore) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	b, _ := io.ReadAll(r)
	s.paths = append(s.paths, objectPath)
	s.bodies = append(s.bodies, string(b))
	return helpers.PublicURL("logos-bucket", objectPath), nil
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

type fixture struct {
	engine *gin.Engine
	store  *recordingStore
	jwt    *helpers.JWTManager
}

func newFixture(expose bool) *fixture {
	mem := memory.NewStore()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	store := &recordingStore{}
	errs := ErrorResponder{ExposeErrors: expose}

	users := application.NewUserService(mem.Users(), jwt, store, nil)
	auth := NewAuthHandler(users, errs, 1<<20)
	me := NewUserHandler(users, errs)

	r := gin.New()
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.GET("/me", middleware.Auth(jwt), me.Me)
	return &fixture{engine: r, store: store, jwt: jwt}
}

func signupForm(t *testing.T, fields map[string]string, logo string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if logo != "" {
		fw, err := mw.CreateFormFile("logo", "Brand.PNG")
		require.NoError(t, err)
		_, err = fw.Write([]byte(logo))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func completeFields() map[string]string {
	return map[string]string{
		"name":                 "Alice",
		"email":                "alice@example.com",
		"password":             "s3cret!",
		"company_name":         "Acme",
		"industry":             "construction",
		"industry_description": "We build things",
	}
}

func (f *fixture) signup(t *testing.T, fields map[string]string, logo string) *httptest.ResponseRecorder {
	body, ct := signupForm(t, fields, logo)
	req := httptest.NewRequest(http.MethodPost, "/signup", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *fixture) login(email, password string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func TestSignup_EachFieldRequired(t *testing.T) {
	f := newFixture(true)
	for field := range completeFields() {
		fields := completeFields()
		delete(fields, field)
		w := f.signup(t, fields, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, field)
		assert.Equal(t, "All fields are required", decode(t, w).Message, field)
	}

	fields := completeFields()
	fields["company_name"] = "   "
	w := f.signup(t, fields, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", decode(t, w).Message)
}

func TestSignup_CreatesUserWithoutLeakingHash(t *testing.T) {
	f := newFixture(true)
	w := f.signup(t, completeFields(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	env := decode(t, w)
	assert.True(t, env.Success)
	var user map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "", user["logo"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
	assert.NotContains(t, w.Body.String(), "$2a$")
	assert.Empty(t, f.store.paths)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	f := newFixture(true)
	require.Equal(t, http.StatusCreated, f.signup(t, completeFields(), "").Code)

	w := f.signup(t, completeFields(), "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User already exists", decode(t, w).Message)
}

func TestSignup_UploadsLogo(t *testing.T) {
	f := newFixture(true)
	w := f.signup(t, completeFields(), "png-bytes")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.Len(t, f.store.paths, 1)
	assert.True(t, strings.HasPrefix(f.store.paths[0], "logos/"))
	assert.True(t, strings.HasSuffix(f.store.paths[0], ".png"))
	assert.Equal(t, "png-bytes", f.store.bodies[0])

	var user map[string]any
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &user))
	assert.Equal(t, helpers.PublicURL("logos-bucket", f.store.paths[0]), user["logo"])
}

func TestSignup_UploadFailureHidesDetailsInProduction(t *testing.T) {
	f := newFixture(false)
	f.store.err = errors.New("bucket quota exceeded")

	w := f.signup(t, completeFields(), "png-bytes")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decode(t, w)
	assert.Nil(t, env.Error)
	assert.NotContains(t, w.Body.String(), "quota")
}

func TestSignup_UploadFailureShowsDetailsOutsideProduction(t *testing.T) {
	f := newFixture(true)
	f.store.err = errors.New("bucket quota exceeded")

	w := f.signup(t, completeFields(), "png-bytes")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decode(t, w).Error, "bucket quota exceeded")
}

func TestLogin(t *testing.T) {
	f := newFixture(true)
	require.Equal(t, http.StatusCreated, f.signup(t, completeFields(), "").Code)

	w := f.login("", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	wrongPassword := f.login("alice@example.com", "nope")
	unknownEmail := f.login("nobody@example.com", "s3cret!")
	for _, w := range []*httptest.ResponseRecorder{wrongPassword, unknownEmail} {
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", decode(t, w).Message)
	}

	w = f.login("alice@example.com", "s3cret!")
	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	claims, err := f.jwt.ParseAccessToken(data.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+data.Token)
	me := httptest.NewRecorder()
	f.engine.ServeHTTP(me, req)
	require.Equal(t, http.StatusOK, me.Code)
	var profile map[string]any
	require.NoError(t, json.Unmarshal(decode(t, me).Data, &profile))
	assert.Equal(t, claims.UserID, profile["id"])
	assert.Equal(t, "Acme", profile["company_name"])
}

func TestMe_UserGone(t *testing.T) {
	f := newFixture(true)
	token, _, err := f.jwt.GenerateAccessToken("6a0c0a52-2b1e-4a55-9a0e-1d2b3c4d5e6f", "ghost@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w).Message)
}

func TestErrorResponder_MapsServiceErrors(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{application.ErrAccessDenied, http.StatusForbidden, "Access denied"},
		{application.ErrApplicationNotFound, http.StatusNotFound, "Application not found"},
		{application.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
		{application.ErrEmptyQuery, http.StatusBadRequest, "Search query is required"},
		{application.ErrTenderNotFound, http.StatusNotFound, "Tender not found"},
		{errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		ErrorResponder{}.Respond(c, tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Equal(t, tc.message, decode(t, w).Message)
	}
}
