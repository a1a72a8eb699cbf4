// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sw360

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/l3montree-dev/sw360bridge/common"
	"github.com/l3montree-dev/sw360bridge/shared"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const halJSON = "application/hal+json"

type ClientConfig struct {
	// BaseURL of the rest api, usually ends with /resource/api
	BaseURL string
	Proxy   common.ProxySettings
	Timeout time.Duration
}

// Client talks to the sw360 rest api. Requests without an Authorization
// header get the one of the header provider.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func NewClient(config ClientConfig, headerProvider shared.HeaderProvider) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(config.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse sw360 url")
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("sw360 url %q needs a scheme and a host", config.BaseURL)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	httpClient := &http.Client{
		Transport: common.NewTransport(config.Proxy),
		Timeout:   timeout,
	}

	// the license list hardly ever changes during a run
	cache := common.NewCacheTransport(100, 10*time.Minute, func(req *http.Request) bool {
		return strings.Contains(req.URL.Path, "/licenses")
	})
	common.WrapHTTPClient(httpClient, common.NewDeduplicationTransport().Handler())
	common.WrapHTTPClient(httpClient, cache.Handler())

	httpClient.Transport = &authTransport{
		base:           httpClient.Transport,
		headerProvider: headerProvider,
	}

	return &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		rateLimiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
	}, nil
}

type authTransport struct {
	base           http.RoundTripper
	headerProvider shared.HeaderProvider
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") != "" || t.headerProvider == nil {
		return t.base.RoundTrip(req)
	}

	header, err := t.headerProvider.HTTPHeaders(req.Context())
	if err != nil {
		return nil, errors.Wrap(err, "could not get sw360 authorization header")
	}

	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return t.base.RoundTrip(req)
}

// url returns the absolute url of the given path segments. Segments are
// escaped.
func (c *Client) url(segments ...string) *url.URL {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL.JoinPath(escaped...)
}

// ResourceURL is the self link of the resource.
func (c *Client) ResourceURL(collection string, id string) string {
	return c.url(collection, id).String()
}

func (c *Client) newRequest(ctx context.Context, method string, u *url.URL, body io.Reader, header http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", halJSON)
	return req, nil
}

// do executes the request. Transport failures and non 2xx responses become a
// *RemoteError, the body of a successful response must be closed by the
// caller.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	op := req.Method + " " + req.URL.Path

	if err := c.rateLimiter.Wait(req.Context()); err != nil {
		return nil, &RemoteError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		slog.Debug("sw360 request failed", "op", op, "status", resp.StatusCode, "body", string(body))
		return nil, &RemoteError{Op: op, StatusCode: resp.StatusCode}
	}

	return resp, nil
}

// getJSON decodes the response of a GET into v. An empty response leaves v
// untouched.
func (c *Client) getJSON(ctx context.Context, u *url.URL, header http.Header, v any) error {
	req, err := c.newRequest(ctx, http.MethodGet, u, nil, header)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(req, resp, v)
}

func (c *Client) sendJSON(ctx context.Context, method string, u *url.URL, body any, v any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "could not marshal request body")
	}

	req, err := c.newRequest(ctx, method, u, bytes.NewReader(payload), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(req, resp, v)
}

func (c *Client) sendMultipart(ctx context.Context, u *url.URL, contentType string, body io.Reader, v any) error {
	req, err := c.newRequest(ctx, http.MethodPost, u, body, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(req, resp, v)
}

func decode(req *http.Request, resp *http.Response, v any) error {
	if v == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	err := json.NewDecoder(resp.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return &RemoteError{Op: req.Method + " " + req.URL.Path, Err: errors.Wrap(err, "could not decode response")}
	}
	return nil
}
