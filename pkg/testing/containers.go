package testing

import (
	"os"
	"testing"
)

// EnabledEnv gates tests that need a container runtime.
const EnabledEnv = "TESTCONTAINERS_ENABLED"

// SkipUnlessContainers skips tb unless TESTCONTAINERS_ENABLED=true.
func SkipUnlessContainers(tb testing.TB) {
	tb.Helper()
	if os.Getenv(EnabledEnv) != "true" {
		tb.Skipf("set %s=true to run container backed tests", EnabledEnv)
	}
}
