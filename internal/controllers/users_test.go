package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/petshopapp/petshop-go/internal/config"
	"github.com/petshopapp/petshop-go/internal/controllers"
	appErrors "github.com/petshopapp/petshop-go/internal/errors"
	"github.com/petshopapp/petshop-go/internal/gateway"
	"github.com/petshopapp/petshop-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendStub struct {
	server   *httptest.Server
	requests atomic.Int64
}

func newBackend(t *testing.T, handler http.HandlerFunc) (*gateway.Client, *backendStub) {
	t.Helper()

	stub := &backendStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(stub.server.Close)

	client := gateway.NewClient(config.Backend{BaseURL: stub.server.URL, Timeout: 5 * time.Second}, nil)

	return client, stub
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	validReq := &models.RegisterRequest{
		Username: "tngan",
		Phone:    "0566699305",
		Password: "123",
		Email:    "tngan@example.com",
	}

	t.Run("Success", func(t *testing.T) {
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "register", r.URL.Query().Get("action"))
			_, _ = w.Write([]byte(`{"message":"Account created"}`))
		})

		message, err := controllers.NewUserController(client).Register(ctx, validReq)

		require.NoError(t, err)
		assert.Equal(t, "Account created", message)
	})

	t.Run("Failure - Short Phone Rejected Locally", func(t *testing.T) {
		client, stub := newBackend(t, func(w http.ResponseWriter, r *http.Request) {})

		req := *validReq
		req.Phone = "056669930"

		_, err := controllers.NewUserController(client).Register(ctx, &req)

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Zero(t, stub.requests.Load(), "invalid input never reaches the backend")
	})

	t.Run("Failure - Missing Credentials Rejected Locally", func(t *testing.T) {
		client, stub := newBackend(t, func(w http.ResponseWriter, r *http.Request) {})

		req := *validReq
		req.Password = ""

		_, err := controllers.NewUserController(client).Register(ctx, &req)

		require.Error(t, err)
		assert.Zero(t, stub.requests.Load())
	})

	t.Run("Failure - Rejection Text Inside 200", func(t *testing.T) {
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"Registration failed: phone already in use"}`))
		})

		_, err := controllers.NewUserController(client).Register(ctx, validReq)

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeRemoteRejected, appErr.Code)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "login", r.URL.Query().Get("action"))
			_, _ = w.Write([]byte(`{"message":"Login successful!","user":{"id":4,"username":"tngan","phone":"0566699305"}}`))
		})

		user, err := controllers.NewUserController(client).Login(ctx, "0566699305", "123")

		require.NoError(t, err)
		assert.Equal(t, 4, user.ID)
		assert.Equal(t, "0566699305", user.Phone)
	})

	t.Run("Failure - Wrong Password", func(t *testing.T) {
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"Wrong phone or password"}`))
		})

		user, err := controllers.NewUserController(client).Login(ctx, "0566699305", "nope")

		require.Error(t, err)
		assert.Nil(t, user)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeRemoteRejected, appErr.Code)
		assert.Equal(t, "Wrong phone or password", appErr.Message)
	})

	t.Run("Failure - Success Message Without User Payload", func(t *testing.T) {
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"Login successful!"}`))
		})

		_, err := controllers.NewUserController(client).Login(ctx, "0566699305", "123")

		require.Error(t, err, "a success literal without the user payload is still a failure")
	})
}

func TestGetByPhone(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "getUserByPhone", r.URL.Query().Get("action"))
			assert.Equal(t, "0566699305", r.URL.Query().Get("phone"))
			_, _ = w.Write([]byte(`{"message":"success","user":{"id":4,"username":"tngan","phone":"0566699305"}}`))
		})

		user, err := controllers.NewUserController(client).GetByPhone(ctx, "0566699305")

		require.NoError(t, err)
		assert.Equal(t, "tngan", user.Username)
	})

	t.Run("Failure - Unknown Phone", func(t *testing.T) {
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"User not found"}`))
		})

		_, err := controllers.NewUserController(client).GetByPhone(ctx, "0000000000")

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestListAllUsers(t *testing.T) {
	ctx := context.Background()

	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getAllUsers", r.URL.Query().Get("action"))
		_, _ = w.Write([]byte(`{"message":"success","data":[{"id":1,"username":"tngan"},{"id":2,"username":"uyen"}]}`))
	})

	users, err := controllers.NewUserController(client).ListAll(ctx)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "uyen", users[1].Username)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"success"}`))
		})

		require.NoError(t, controllers.NewUserController(client).Delete(ctx, 2))
	})

	t.Run("Failure - Rejected", func(t *testing.T) {
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"Cannot delete an admin account"}`))
		})

		err := controllers.NewUserController(client).Delete(ctx, 1)

		require.Error(t, err)
	})
}
