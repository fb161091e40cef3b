// Package gatewaytest provides an in-memory gateway.Client for tests,
// mirroring the backend endpoints a test cares about without a network.
package gatewaytest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/smarket/storefront-bff/internal/gateway"
)

// Call records one request seen by the stub.
type Call struct {
	Method string
	Path   string
	Body   any
}

// Stub implements gateway.Client from a map of "METHOD path" handlers.
type Stub struct {
	mu       sync.Mutex
	Handlers map[string]func(body any) (gateway.Response, error)
	Calls    []Call
}

// NewStub returns an empty stub; register handlers via On.
func NewStub() *Stub {
	return &Stub{Handlers: map[string]func(body any) (gateway.Response, error){}}
}

// On registers a handler for "METHOD path".
func (s *Stub) On(method, path string, fn func(body any) (gateway.Response, error)) {
	s.Handlers[method+" "+path] = fn
}

// Reply registers a fixed JSON reply for "METHOD path".
func (s *Stub) Reply(method, path string, v any) {
	s.On(method, path, func(any) (gateway.Response, error) {
		return JSON(v), nil
	})
}

// Fail registers a fixed upstream error for "METHOD path".
func (s *Stub) Fail(method, path string, status int) {
	s.On(method, path, func(any) (gateway.Response, error) {
		return gateway.Response{Status: status}, &gateway.StatusError{Status: status}
	})
}

// CallsTo returns the recorded calls matching method and path.
func (s *Stub) CallsTo(method, path string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []Call{}
	for _, c := range s.Calls {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

func (s *Stub) Get(_ context.Context, path string) (gateway.Response, error) {
	return s.do(http.MethodGet, path, nil)
}

func (s *Stub) Post(_ context.Context, path string, body any) (gateway.Response, error) {
	return s.do(http.MethodPost, path, body)
}

func (s *Stub) Put(_ context.Context, path string, body any) (gateway.Response, error) {
	return s.do(http.MethodPut, path, body)
}

func (s *Stub) Delete(_ context.Context, path string) (gateway.Response, error) {
	return s.do(http.MethodDelete, path, nil)
}

func (s *Stub) do(method, path string, body any) (gateway.Response, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, Call{Method: method, Path: path, Body: body})
	fn := s.Handlers[method+" "+path]
	s.mu.Unlock()

	if fn == nil {
		return gateway.Response{Status: http.StatusNotFound},
			&gateway.StatusError{Status: http.StatusNotFound, Body: fmt.Sprintf("no stub for %s %s", method, path)}
	}
	return fn(body)
}

// JSON builds a 200 response whose body is the JSON encoding of v.
func JSON(v any) gateway.Response {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return gateway.Response{Status: http.StatusOK, Data: b}
}
