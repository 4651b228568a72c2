package e2e

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeRosterFixture(home))

	stdout, stderr, err := runScouts(t, binaryPath, home, nil, "roster")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Anna (100)")

	input := strings.NewReader("100 start_shift\n100 end_shift\n1 approve 100\nstatus\n")
	stdout, stderr, err = runScouts(t, binaryPath, home, input, "serve")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "→ 1: 🔔 Запрос на досрочное завершение смены от Anna.")
	assert.Contains(t, stdout, "→ 100: 🛴 Скаут Anna.")
	assert.Contains(t, stdout, "Смена #1 работу закончил по подтверждению старшего скаута.")
	assert.Contains(t, stdout, "on shift: 0")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "scouts-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/scouts")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build scouts binary: %s", string(output))
	return binaryPath
}

func runScouts(t *testing.T, binaryPath, home string, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = stdin

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeRosterFixture(home string) error {
	configDir := filepath.Join(home, ".scouts")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	roster := `version = 1
group_chat = "-1001"

[owner]
id = "1"
name = "Boss"

[[scouts]]
id = "100"
name = "Anna"
`

	return os.WriteFile(filepath.Join(configDir, "roster.toml"), []byte(roster), 0o644)
}
