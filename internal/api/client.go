package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/ziggyhome/panel/domain"
	appLogger "github.com/ziggyhome/panel/pkg/logger"
)

const basePath = "/api"

// Config carries the settings the adapter needs.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the single outgoing HTTP boundary. It attaches the JSON
// content type and a request ID, logs every exchange, and normalizes
// failures into domain errors carrying the backend's detail message
// when one is present.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient constructs the adapter. The trailing slash on the base URL,
// if any, is dropped so path joining stays predictable.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:    &fasthttp.Client{Name: "ziggy-panel"},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
		logger:  logger,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, fasthttp.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, fasthttp.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, fasthttp.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, fasthttp.MethodDelete, path, nil, out)
}

// detailPayload is the backend's error envelope on non-2xx responses.
type detailPayload struct {
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "request aborted", err)
	}

	reqID := uuid.NewString()
	log := appLogger.WithRequestID(appLogger.ContextWithRequestID(ctx, reqID), c.logger)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + basePath + path)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Request-ID", reqID)

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "encode request body", err)
		}
		req.SetBody(payload)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	start := time.Now()
	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		log.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return domain.WrapError(domain.ErrCodeUnavailable, "backend unreachable", err)
	}

	status := resp.StatusCode()
	log.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)))

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return c.statusError(method, path, status, resp.Body(), log)
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "decode response body", err)
	}
	return nil
}

// statusError prefers the backend's detail message and falls back to a
// generic status line when the body carries none.
func (c *Client) statusError(method, path string, status int, body []byte, log *zap.Logger) error {
	message := fmt.Sprintf("backend returned status %d", status)
	var payload detailPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		message = payload.Detail
	}

	log.Warn("backend rejected request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.String("detail", message))

	return domain.NewError(codeFromStatus(status), message)
}

func codeFromStatus(status int) domain.ErrorCode {
	switch status {
	case http.StatusNotFound:
		return domain.ErrCodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrCodeInvalid
	default:
		if status >= http.StatusInternalServerError {
			return domain.ErrCodeInternal
		}
		return domain.ErrCodeUnavailable
	}
}
