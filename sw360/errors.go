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
	"fmt"

	"github.com/pkg/errors"
)

// ErrRemoteOperationFailed is matched by every error returned from a call to
// sw360, regardless of whether the transport or the server failed.
var ErrRemoteOperationFailed = errors.New("sw360 remote operation failed")

type RemoteError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s: unexpected status code %d", ErrRemoteOperationFailed, e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %v", ErrRemoteOperationFailed, e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteOperationFailed
}

func isNotFound(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr) && remoteErr.StatusCode == 404
}
