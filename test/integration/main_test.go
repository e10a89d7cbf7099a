// Package integration_test exercises the compiled workspace binary end to
// end. Every test runs against its own WORKSPACE_HOME so state never leaks
// between tests.
package integration_test

import (
	"log"
	"os"
	"testing"

	"workspace/test/integration/harness"
)

func TestMain(m *testing.M) {
	if _, err := harness.BuildBinary(); err != nil {
		log.Fatalf("building workspace binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()
	os.Exit(code)
}
