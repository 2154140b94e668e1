package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-faved-comments/internal/config"
	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/internal/utils"
	"github.com/MKhiriev/go-faved-comments/models"
	"github.com/go-resty/resty/v2"
)

const (
	traceIDHeader = "X-Trace-ID"

	listRetryCount = 2
	listRetryWait  = 200 * time.Millisecond
)

type httpFavoritesAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPFavoritesAdapter constructs an HTTP/REST implementation of
// [FavoritesAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL, the request timeout and a small retry budget for
// idempotent calls.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPFavoritesAdapter(adapterCfg config.Adapter, logger *logger.Logger) (FavoritesAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewRetryingHTTPClient(utils.RetryPolicy{
		Count:    listRetryCount,
		WaitTime: listRetryWait,
	})
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpFavoritesAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [FavoritesAdapter]. It sends
// GET /{credential}?flags=<flags> and decodes the JSON array of records.
func (h *httpFavoritesAdapter) List(ctx context.Context, credential string, flags models.ContentType) ([]models.FavedComment, error) {
	req, err := h.request(ctx, credential)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("flags", strconv.Itoa(int(flags))).
		Get("/{credential}")
	if err != nil {
		return nil, fmt.Errorf("list favorites request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	comments := []models.FavedComment{}
	if body := bytes.TrimSpace(resp.Body()); len(body) > 0 {
		if err = json.Unmarshal(body, &comments); err != nil {
			return nil, fmt.Errorf("decode list favorites response: %w", err)
		}
	}

	h.logger.Debug().
		Int("count", len(comments)).
		Int("flags", int(flags)).
		Msg("listed faved comments")

	if comments == nil {
		comments = []models.FavedComment{}
	}
	return comments, nil
}

// Save implements [FavoritesAdapter]. It sends PUT /{credential}/{commentId}
// with the comment as JSON body.
func (h *httpFavoritesAdapter) Save(ctx context.Context, credential string, comment models.FavedComment) error {
	req, err := h.request(ctx, credential)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("commentId", strconv.FormatInt(comment.ID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(comment).
		Put("/{credential}/{commentId}")
	if err != nil {
		return fmt.Errorf("save favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

// Delete implements [FavoritesAdapter]. It sends
// DELETE /{credential}/{commentId}.
func (h *httpFavoritesAdapter) Delete(ctx context.Context, credential string, commentID int64) error {
	req, err := h.request(ctx, credential)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("commentId", strconv.FormatInt(commentID, 10)).
		Delete("/{credential}/{commentId}")
	if err != nil {
		return fmt.Errorf("delete favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpFavoritesAdapter) request(ctx context.Context, credential string) (*resty.Request, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, ErrEmptyCredential
	}

	req := h.client.R().
		SetContext(ctx).
		SetPathParam("credential", credential)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req, nil
}
