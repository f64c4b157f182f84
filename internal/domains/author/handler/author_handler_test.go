package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/author/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Register(ctx context.Context, req model.RegisterRequest) (*model.Author, error) {
	args := m.Called(ctx, req)
	author, _ := args.Get(0).(*model.Author)
	return author, args.Error(1)
}

func (m *mockService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*model.LoginResponse)
	return resp, args.Error(1)
}

func setupRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc, "x-api-key")

	r := gin.New()
	r.POST("/authors", h.Register)
	r.POST("/login", h.Login)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_HidesPassword(t *testing.T) {
	svc := new(mockService)
	svc.On("Register", mock.Anything, mock.Anything).Return(&model.Author{Email: "a@b.co", Password: "$2a$hash"}, nil)

	w := post(setupRouter(svc), "/authors", `{"email":"a@b.co"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "hash")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_Conflict(t *testing.T) {
	svc := new(mockService)
	svc.On("Register", mock.Anything, mock.Anything).Return(nil, model.ErrEmailAlreadyExists)

	w := post(setupRouter(svc), "/authors", `{"email":"a@b.co"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_MalformedBody(t *testing.T) {
	w := post(setupRouter(new(mockService)), "/authors", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_SetsAuthHeader(t *testing.T) {
	svc := new(mockService)
	svc.On("Login", mock.Anything, model.LoginRequest{Email: "a@b.co", Password: "pw"}).
		Return(&model.LoginResponse{Token: "tok", AuthorID: "64b7f0c2a1b2c3d4e5f60718"}, nil)

	w := post(setupRouter(svc), "/login", `{"email":"a@b.co","password":"pw"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", w.Header().Get("x-api-key"))

	var body struct {
		Data model.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "tok", body.Data.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := new(mockService)
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, model.ErrInvalidCredentials)

	w := post(setupRouter(svc), "/login", `{"email":"a@b.co","password":"pw"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
