package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"github.com/smarket/storefront-bff/internal/config"
)

type restClient struct {
	rl   ratelimit.Limiter
	http *resty.Client
}

// New creates a Client backed by the remote content API configured in cfg.
func New(cfg config.ContentConfig) Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout()).
		SetHeader("Accept", "application/json")

	rps := cfg.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 20
	}

	return &restClient{
		rl:   ratelimit.New(rps),
		http: client,
	}
}

func (c *restClient) Get(ctx context.Context, path string) (Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *restClient) Post(ctx context.Context, path string, body any) (Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *restClient) Put(ctx context.Context, path string, body any) (Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *restClient) Delete(ctx context.Context, path string) (Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// do performs a single request. There is no retry or backoff: a failed call
// is terminal for that attempt and the caller decides when to try again.
func (c *restClient) do(ctx context.Context, method, path string, body any) (Response, error) {
	c.rl.Take()

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctx.Err() != nil {
			return Response{}, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return Response{}, fmt.Errorf("content api %s %s: %w", method, path, err)
	}

	if resp.IsError() {
		log.Warnf("content api %s %s returned %d", method, path, resp.StatusCode())
		return Response{Status: resp.StatusCode()}, &StatusError{
			Status: resp.StatusCode(),
			Body:   resp.String(),
		}
	}

	log.Debugf("content api %s %s returned %d", method, path, resp.StatusCode())
	return Response{
		Status: resp.StatusCode(),
		Data:   json.RawMessage(resp.String()),
	}, nil
}
