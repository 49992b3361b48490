package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkTestCatalog = `addOns:
  - id: websocket
    status: release
    fileVersion: 5
    version: 1.2.0
    dependencies:
      addOns:
        - id: commons
          notBeforeFileVersion: 3
  - id: commons
    status: release
    fileVersion: 4
    version: 1.4.0
  - id: broken
    status: release
    fileVersion: 1
    dependencies:
      addOns:
        - id: ghost
  - id: jdk-hungry
    status: release
    fileVersion: 1
    dependencies:
      runtimeVersion: "11"
`

// runCLI executes the root command with the given arguments against an
// isolated config environment.
func runCLI(t *testing.T, catalogPath string, args ...string) error {
	t.Helper()
	t.Setenv("APM_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("APM_CATALOG", "")
	t.Setenv("APM_HOST_VERSION", "")
	t.Setenv("APM_RUNTIME_VERSION", "")

	root := NewRootCmd()
	if catalogPath != "" {
		args = append(args, "--catalog", catalogPath)
	}
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func writeTestCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckRunnableAddOn(t *testing.T) {
	catalog := writeTestCatalog(t, checkTestCatalog)

	err := runCLI(t, catalog, "addon", "check", "websocket")
	assert.NoError(t, err)
}

func TestCheckBlockedAddOn(t *testing.T) {
	catalog := writeTestCatalog(t, checkTestCatalog)

	err := runCLI(t, catalog, "addon", "check", "broken")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitNotRunnable, exitErr.Code)
}

func TestCheckRuntimeShortfall(t *testing.T) {
	catalog := writeTestCatalog(t, checkTestCatalog)

	err := runCLI(t, catalog, "addon", "check", "jdk-hungry", "--runtime-version", "1.8")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitNotRunnable, exitErr.Code)
}

func TestCheckRuntimeSatisfied(t *testing.T) {
	catalog := writeTestCatalog(t, checkTestCatalog)

	err := runCLI(t, catalog, "addon", "check", "jdk-hungry", "--runtime-version", "17")
	assert.NoError(t, err)
}

func TestCheckUnknownAddOn(t *testing.T) {
	catalog := writeTestCatalog(t, checkTestCatalog)

	err := runCLI(t, catalog, "addon", "check", "nope")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitNotFound, exitErr.Code)
}

func TestCheckMissingCatalog(t *testing.T) {
	err := runCLI(t, filepath.Join(t.TempDir(), "nope.yaml"), "addon", "check", "websocket")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitNotFound, exitErr.Code)
}

func TestCheckInvalidOutputFormat(t *testing.T) {
	catalog := writeTestCatalog(t, checkTestCatalog)

	err := runCLI(t, catalog, "addon", "check", "websocket", "-o", "xml")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitValidationError, exitErr.Code)
}

func TestCheckJSONOutput(t *testing.T) {
	catalog := writeTestCatalog(t, checkTestCatalog)

	err := runCLI(t, catalog, "addon", "check", "websocket", "-o", "json")
	assert.NoError(t, err)
}

func TestCheckHostVersionWindow(t *testing.T) {
	catalog := writeTestCatalog(t, `addOns:
  - id: modern
    status: release
    fileVersion: 1
    notBeforeVersion: 2.10.0
`)

	t.Run("inside window", func(t *testing.T) {
		err := runCLI(t, catalog, "addon", "check", "modern", "--host-version", "2.16.1")
		assert.NoError(t, err)
	})

	t.Run("outside window", func(t *testing.T) {
		err := runCLI(t, catalog, "addon", "check", "modern", "--host-version", "2.9.0")
		require.Error(t, err)

		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, ExitNotRunnable, exitErr.Code)
	})
}
