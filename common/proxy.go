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
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type ProxySettings struct {
	UseProxy bool   `json:"useProxy" mapstructure:"useProxy"`
	Host     string `json:"proxyHost" mapstructure:"proxyHost"`
	Port     int    `json:"proxyPort" mapstructure:"proxyPort"`
}

// ProxyFunc returns the proxy selection for http.Transport. Without an
// explicit proxy the standard environment variables apply.
func (p ProxySettings) ProxyFunc() func(*http.Request) (*url.URL, error) {
	if !p.UseProxy || p.Host == "" {
		return http.ProxyFromEnvironment
	}

	proxyURL := &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
	}
	return http.ProxyURL(proxyURL)
}

// NewTransport returns an instrumented transport honoring the proxy settings.
func NewTransport(proxy ProxySettings) http.RoundTripper {
	return otelhttp.NewTransport(&http.Transport{
		Proxy:                 proxy.ProxyFunc(),
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	})
}
