package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Response is a normalized reply from the remote content API. Data holds the
// raw body; DecodeInto knows how to unwrap it into a concrete type.
type Response struct {
	Status int
	Data   json.RawMessage
}

// Client is the single point of contact with the remote content API. Every
// other package talks to the backend through this interface.
type Client interface {
	Get(ctx context.Context, path string) (Response, error)
	Post(ctx context.Context, path string, body any) (Response, error)
	Put(ctx context.Context, path string, body any) (Response, error)
	Delete(ctx context.Context, path string) (Response, error)
}

// StatusError is returned for non-2xx upstream replies.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("content api returned %d: %s", e.Status, e.Body)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// envelope matches the `{"data": ...}` wrapper some endpoints use.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// DecodeInto decodes a response payload into v. Endpoints are inconsistent
// about wrapping payloads in a `data` field, so both shapes are accepted and
// normalized here before they reach any component.
func DecodeInto(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return errors.New("empty response body")
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		raw = env.Data
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
