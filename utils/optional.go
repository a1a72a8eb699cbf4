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

package utils

// Optional holds either a value or nothing. The zero value is empty.
type Optional[T any] struct {
	value T
	isSet bool
}

func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{value: value, isSet: true}
}

func EmptyOptional[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsSet() bool {
	return o.isSet
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.isSet
}

func (o Optional[T]) OrElse(def T) T {
	if !o.isSet {
		return def
	}
	return o.value
}
