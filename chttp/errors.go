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

package chttp

import (
	"errors"
	"fmt"
)

// Exit statuses, borrowed from curl's exit codes, so that command line tools
// built on this package can report failures consistently.
//
// See https://curl.se/libcurl/c/libcurl-errors.html
const (
	// ExitUnknownFailure indicates an unspecified error.
	ExitUnknownFailure = 1
	// ExitFailedToInitialize indicates the request could not be prepared,
	// such as when credentials are missing or invalid.
	ExitFailedToInitialize = 2
	// ExitStatusURLMalformed indicates that the provided URL could not be
	// parsed.
	ExitStatusURLMalformed = 3
)

type curlError struct {
	curlStatus int
	httpStatus int
	error
}

func (e *curlError) ExitStatus() int {
	return e.curlStatus
}

func (e *curlError) HTTPStatus() int {
	return e.httpStatus
}

// StatusCode is an alias of HTTPStatus.
func (e *curlError) StatusCode() int {
	return e.httpStatus
}

func (e *curlError) Unwrap() error {
	return e.error
}

func fullError(httpStatus, curlStatus int, err error) error {
	return &curlError{
		curlStatus: curlStatus,
		httpStatus: httpStatus,
		error:      err,
	}
}

func initError(httpStatus int, format string, args ...interface{}) error {
	return fullError(httpStatus, ExitFailedToInitialize, fmt.Errorf(format, args...))
}

// ExitStatus returns the curl exit status embedded in the error, or 1
// (unknown error), if there was no specified exit status. If err is nil,
// ExitStatus returns 0.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var statuser interface {
		ExitStatus() int
	}
	if errors.As(err, &statuser) {
		return statuser.ExitStatus()
	}
	return ExitUnknownFailure
}
