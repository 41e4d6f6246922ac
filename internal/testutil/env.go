// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"testing"
)

// MustUnsetenv unsets each variable for the duration of the test and restores
// the original values on cleanup. Like t.Setenv it must not be used in
// parallel tests.
func MustUnsetenv(t testing.TB, keys ...string) {
	t.Helper()

	for _, key := range keys {
		originalValue, hadValue := os.LookupEnv(key)
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset env %s: %v", key, err)
		}
		t.Cleanup(func() {
			if !hadValue {
				return
			}
			if err := os.Setenv(key, originalValue); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
		})
	}
}
