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
	"log/slog"
	"net/http"
	"net/http/httputil"

	"golang.org/x/sync/singleflight"
)

// DeduplicationTransport collapses concurrent identical GET requests into a
// single round trip. Every caller receives its own copy of the response.
type DeduplicationTransport struct {
	group singleflight.Group
}

func NewDeduplicationTransport() *DeduplicationTransport {
	return &DeduplicationTransport{}
}

func (c *DeduplicationTransport) Handler() RoundTripWrapper {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		dump, err, shared := c.group.Do(cacheKey(req), func() (any, error) {
			resp, err := next.RoundTrip(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			return httputil.DumpResponse(resp, true)
		})

		if shared {
			slog.Debug("deduplicated request", "method", req.Method, "url", req.URL.String())
		}
		if err != nil {
			return nil, err
		}

		return responseFromBytes(dump.([]byte), req)
	}
}
