package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"teasr/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withIdentity(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func TestGetPosts(t *testing.T) {
	app := fiber.New()
	mockPosts := new(MockPostRepository)
	s := newTestServer(new(MockUserRepository), mockPosts, new(MockPaymentRepository), new(MockMessageRepository))
	app.Get("/posts", s.GetPosts)

	mockPosts.On("List", mock.Anything).Return([]models.Post{
		{ID: 1, Title: "one"},
		{ID: 2, Title: "two"},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	assert.Len(t, posts, 2)
}

func TestCreatePost(t *testing.T) {
	app := fiber.New()
	mockPosts := new(MockPostRepository)
	s := newTestServer(new(MockUserRepository), mockPosts, new(MockPaymentRepository), new(MockMessageRepository))
	app.Use(withIdentity(1))
	app.Post("/posts", s.CreatePost)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"title": "New Post",
				"price": "3.00",
			},
			mockSetup: func() {
				mockPosts.On("Create", mock.Anything, mock.Anything).Return(nil)
				mockPosts.On("GetByID", mock.Anything, mock.Anything).Return(&models.Post{ID: 1, Title: "New Post"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing Title",
			body: map[string]string{
				"price": "3.00",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetPostRevenue(t *testing.T) {
	app := fiber.New()
	mockPayments := new(MockPaymentRepository)
	s := newTestServer(new(MockUserRepository), new(MockPostRepository), mockPayments, new(MockMessageRepository))
	app.Get("/posts/:id/revenue", s.GetPostRevenue)

	mockPayments.On("PostRevenue", mock.Anything, uint(1)).Return("12.50", nil)
	mockPayments.On("PostRevenue", mock.Anything, uint(2)).Return("", errors.New("backend unreachable"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/1/revenue", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"revenue":"12.50"}`, string(body))

	// Fetch failures degrade to zero with a 200, never an error response.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/posts/2/revenue", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"revenue":"0.00"}`, string(body))

	// Bad ID is a validation error.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/posts/abc/revenue", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
