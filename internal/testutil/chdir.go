package testutil

import (
	"os"
	"testing"
)

// Chdir changes the working directory to dir for the duration of the test,
// restoring the previous directory on cleanup. It mirrors testing.T.Chdir,
// which is unavailable before Go 1.24.
func Chdir(t testing.TB, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory %s: %v", prev, err)
		}
	})
}
