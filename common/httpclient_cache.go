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

package common

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type RoundTripWrapper = func(req *http.Request, next http.RoundTripper) (*http.Response, error)

func WrapHTTPClient(client *http.Client, wrap RoundTripWrapper) {
	if client == nil {
		return
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return wrap(req, base)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// CacheTransport caches successful GET responses of requests accepted by
// the match function. Everything else passes through.
type CacheTransport struct {
	cache *expirable.LRU[string, []byte]
	match func(req *http.Request) bool
}

func NewCacheTransport(cacheSize int, expiration time.Duration, match func(req *http.Request) bool) *CacheTransport {
	if match == nil {
		match = func(*http.Request) bool { return true }
	}
	return &CacheTransport{
		cache: expirable.NewLRU[string, []byte](cacheSize, nil, expiration),
		match: match,
	}
}

func (c *CacheTransport) Handler() RoundTripWrapper {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet || !c.match(req) {
			return next.RoundTrip(req)
		}

		key := cacheKey(req)

		if val, ok := c.cache.Get(key); ok {
			slog.Debug("cache hit", "url", req.URL.String())
			return responseFromBytes(val, req)
		}

		resp, err := next.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		// only cache successful responses
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp, nil
		}

		v, err := httputil.DumpResponse(resp, true)
		if err != nil {
			slog.Warn("could not dump response", "err", err)
			return resp, nil
		}
		resp.Body.Close()

		c.cache.Add(key, v)

		return responseFromBytes(v, req)
	}
}

// Purge drops all cached responses.
func (c *CacheTransport) Purge() {
	c.cache.Purge()
}

func responseFromBytes(v []byte, req *http.Request) (*http.Response, error) {
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(v)), req)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp, nil
}

func cacheKey(req *http.Request) string {
	key := req.URL.String()

	// never share cached responses between different credentials
	auth := req.Header.Get("Authorization")
	cookie := req.Header.Get("Cookie")

	if auth != "" || cookie != "" {
		h := sha256.New()
		h.Write([]byte(key))
		h.Write([]byte(auth))
		h.Write([]byte(cookie))
		return fmt.Sprintf("%x", h.Sum(nil))
	}

	return key
}
