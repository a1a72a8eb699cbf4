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

package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/l3montree-dev/sw360bridge/common"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

var ErrFailedToDownload = errors.New("failed to download file")

type HTTPHelper struct {
	httpClient   *http.Client
	showProgress bool
}

func NewHTTPHelper(proxySettings common.ProxySettings, showProgress bool) *HTTPHelper {
	return &HTTPHelper{
		httpClient: &http.Client{
			Transport: common.NewTransport(proxySettings),
		},
		showProgress: showProgress,
	}
}

// DownloadFile makes a single GET request. Anything but a 200 response is
// reported as ErrFailedToDownload. The body is written to a temporary file
// first so an interrupted download never shows up under the final name.
func (h *HTTPHelper) DownloadFile(ctx context.Context, url string, targetDir string, fileName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToDownload, err)
	}
	req.Header.Set("User-Agent", "sw360bridge")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(ErrFailedToDownload, "%s returned %s", url, resp.Status)
	}

	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", errors.Wrap(err, "could not create target directory")
	}

	tmp, err := os.CreateTemp(targetDir, fileName+".*.part")
	if err != nil {
		return "", errors.Wrap(err, "could not create temporary file")
	}
	defer os.Remove(tmp.Name()) // nolint:errcheck

	var w io.Writer = tmp
	if h.showProgress {
		w = io.MultiWriter(tmp, progressbar.DefaultBytes(resp.ContentLength, "downloading "+fileName))
	}

	_, err = io.Copy(w, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToDownload, err)
	}

	target := filepath.Join(targetDir, fileName)
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", errors.Wrap(err, "could not move downloaded file")
	}

	return target, nil
}
