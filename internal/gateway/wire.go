package gateway

import (
	"strings"

	"github.com/petshopapp/petshop-go/internal/errors"
	"github.com/petshopapp/petshop-go/internal/models"
)

// ResponseMessage is the backend's bare acknowledgement shape. Login
// additionally carries the authenticated user.
type ResponseMessage struct {
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}

// Envelope wraps list and detail payloads. The message field, not the
// HTTP status, decides logical success: "operation failed" arrives
// inside a 200 just as easily as inside a 500.
type Envelope[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// Success literals of the backend contract.
const (
	MsgSuccess      = "success"
	MsgLoginSuccess = "Login successful!"
)

func IsSuccess(message string) bool {
	return message == MsgSuccess
}

// IsFailureText reports whether a free-form acknowledgement message
// reads as a failure. Some endpoints answer with human-readable text
// instead of the "success" literal, so this falls back to matching
// failure words.
func IsFailureText(message string) bool {
	lower := strings.ToLower(message)

	return strings.Contains(lower, "error") || strings.Contains(lower, "failed")
}

// Unwrap turns an Envelope into its payload, converting a non-success
// message into a remote-rejected error.
func Unwrap[T any](env Envelope[T], err error) (T, error) {

	var zero T

	if err != nil {
		return zero, err
	}

	if !IsSuccess(env.Message) {
		return zero, errors.RemoteRejectedError(env.Message)
	}

	return env.Data, nil
}
