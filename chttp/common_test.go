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
	"testing"

	"gitlab.com/flimzy/testy"
)

// curlStatusError is a modified version of testy.StatusError, which handles
// exit statuses as well.
func curlStatusError(t *testing.T, expected string, status, eStatus int, actual error) {
	t.Helper()
	var err string
	var actualStatus, actualExitStatus int
	if actual != nil {
		err = actual.Error()
		actualStatus = testy.StatusCode(actual)
		actualExitStatus = ExitStatus(actual)
	}
	if expected != err {
		t.Errorf("Unexpected error: %s (expected %s)", err, expected)
	}
	if status != actualStatus {
		t.Errorf("Unexpected status code: %d (expected %d)", actualStatus, status)
	}
	if eStatus != actualExitStatus {
		t.Errorf("Unexpected exit status: %d (expected %d)", actualExitStatus, eStatus)
	}
	if actual != nil {
		t.SkipNow()
	}
}
