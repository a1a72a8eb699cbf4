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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var v = validator.New()

func containsRune(s string, r rune) bool {
	return strings.ContainsRune(s, r)
}

func sanitizeURL(rawURL string) string {
	rawURL = strings.TrimSuffix(strings.TrimSpace(rawURL), "/")

	// check if the url has a protocol
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	return rawURL
}

// validateRepositoryURL trims the url but never guesses a scheme. A mistyped
// scheme would otherwise end up as part of the host.
func validateRepositoryURL(rawURL string) (string, error) {
	rawURL = strings.TrimSuffix(strings.TrimSpace(rawURL), "/")
	if err := v.Var(rawURL, "http_url"); err != nil {
		return "", errors.Errorf("repositoryUrl must be an absolute http or https url, got %q", rawURL)
	}
	return rawURL, nil
}

// IsValidPath checks that path is a usable path of an existing file or
// directory.
func IsValidPath(path string) error {
	if !utf8.ValidString(path) || len(path) == 0 || containsRune(path, 0) {
		return fmt.Errorf("path contains null bytes")
	}

	invalidChars := `<>"|?*`
	for _, char := range invalidChars {
		if containsRune(path, char) {
			return fmt.Errorf("invalid character '%c' in path", char)
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return errors.Wrapf(err, "path does not exist: %s", absPath)
	}

	return nil
}
