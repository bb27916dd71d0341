// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package couchutil

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type statusError struct {
	status int
	error
}

func (e *statusError) HTTPStatus() int {
	return e.status
}

// StatusCode is an alias of HTTPStatus.
func (e *statusError) StatusCode() int {
	return e.status
}

func (e *statusError) Unwrap() error {
	return e.error
}

func statusErrorf(status int, format string, args ...interface{}) error {
	return &statusError{status: status, error: errors.Errorf(format, args...)}
}

// wrapStatus annotates err with msg, and attaches an HTTP status.
func wrapStatus(status int, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &statusError{status: status, error: errors.Wrap(err, msg)}
}

func missingArg(arg string) error {
	return statusErrorf(http.StatusBadRequest, "couchutil: %s required", arg)
}

// TypeError is returned when a value cannot be converted to the requested
// type.
type TypeError struct {
	// Value is the value that could not be converted.
	Value interface{}
	// Target names the requested type.
	Target string
	// Err is the underlying parse error, if any.
	Err error
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("couchutil: cannot convert %T to %s", e.Value, e.Target)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// HTTPStatus returns http.StatusBadRequest.
func (e *TypeError) HTTPStatus() int {
	return http.StatusBadRequest
}

// StatusCode is an alias of HTTPStatus.
func (e *TypeError) StatusCode() int {
	return http.StatusBadRequest
}

func (e *TypeError) Unwrap() error {
	return e.Err
}
