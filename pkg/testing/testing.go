// Package testing is imported for its side effects by _test.go files:
//
//	import (
//		_ "liyu1981.xyz/rf-code-hub/pkg/testing"
//	)
//
// It moves the working directory to the project root so relative paths
// (assets, .env) resolve the same way as in the server, and points the
// rotating log file at a temp dir unless RF_LOG_DIR is already set.
package testing

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	root := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}

	if os.Getenv("RF_LOG_DIR") == "" {
		_ = os.Setenv("RF_LOG_DIR", filepath.Join(os.TempDir(), "rf-code-hub-test-logs"))
	}
}
