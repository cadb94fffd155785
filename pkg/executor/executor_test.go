package executor_test

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/arthur-debert/smbsnap/pkg/executor"
	smberrors "github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRunner implements executor.Runner for testing
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	called := m.Called(name, args)
	out, _ := called.Get(0).([]byte)
	return out, called.Error(1)
}

func newTestExecutor(t *testing.T, runner executor.Runner, dryRun bool) (*executor.Executor, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	return executor.New(executor.Options{Runner: runner, DryRun: dryRun, Logger: &logger}), &buf
}

func TestRun_ArgvSuccess(t *testing.T) {
	runner := &MockRunner{}
	runner.On("Run", "rsync", []string{"-aAX", "/srv/shares/A/", "/srv/snapshots/A/@GMT-2024.01.01-00.00.00"}).
		Return([]byte("sent 10 bytes\n"), nil).Once()

	ex, logs := newTestExecutor(t, runner, false)
	outcome, err := ex.Run(context.Background(),
		types.Argv("rsync", "-aAX", "/srv/shares/A/", "/srv/snapshots/A/@GMT-2024.01.01-00.00.00"))

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.False(t, outcome.DryRun)
	assert.Equal(t, "sent 10 bytes\n", outcome.Output)
	assert.Contains(t, logs.String(), "Command: rsync -aAX")
	runner.AssertExpectations(t)
}

func TestRun_ShellLineUsesConfiguredShell(t *testing.T) {
	runner := &MockRunner{}
	runner.On("Run", "/bin/bash", []string{"-c", "mount -o remount,rw /srv/snapshots"}).
		Return([]byte(""), nil).Once()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ex := executor.New(executor.Options{Runner: runner, Shell: "/bin/bash", Logger: &logger})

	outcome, err := ex.Run(context.Background(), types.ShellLine("mount -o remount,rw /srv/snapshots"))

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	runner.AssertExpectations(t)
}

func TestRun_FailureCapturesOutput(t *testing.T) {
	runner := &MockRunner{}
	runner.On("Run", "cp", []string{"-a", "/src/.", "/dst/"}).
		Return([]byte("cp: cannot stat '/src/.': No such file or directory\n"), errors.New("exit status 1")).Once()

	ex, logs := newTestExecutor(t, runner, false)
	outcome, err := ex.Run(context.Background(), types.Argv("cp", "-a", "/src/.", "/dst/"))

	require.NoError(t, err, "a failed command is an outcome, not an error")
	assert.False(t, outcome.Success)
	assert.Error(t, outcome.Err)
	assert.Equal(t, -1, outcome.ExitCode)
	assert.Contains(t, logs.String(), "Last command failed!")
	assert.Contains(t, logs.String(), "No such file or directory")
	assert.Contains(t, logs.String(), `"level":"error"`)
}

func TestRun_DryRunLaunchesNothing(t *testing.T) {
	runner := &MockRunner{}

	ex, logs := newTestExecutor(t, runner, true)
	outcome, err := ex.Run(context.Background(), types.Argv("rm", "-rf", "/srv/snapshots"))

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.True(t, outcome.DryRun)
	assert.True(t, ex.DryRun())
	assert.Contains(t, logs.String(), "Command: rm -rf /srv/snapshots")
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestRun_InvalidCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  types.Command
	}{
		{"zero value", types.Command{}},
		{"empty argv", types.Argv()},
		{"blank shell line", types.ShellLine("   ")},
		{"unknown kind", types.Command{Kind: types.CommandKind(42), Line: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &MockRunner{}
			ex, _ := newTestExecutor(t, runner, false)

			_, err := ex.Run(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, smberrors.IsErrorCode(err, smberrors.ErrCommandInvalid))
			runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
		})
	}
}

func TestExecRunner_RealProcesses(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	executorUnderTest := executor.New(executor.Options{})

	t.Run("exit zero", func(t *testing.T) {
		outcome, err := executorUnderTest.Run(context.Background(), types.ShellLine("echo hello"))
		require.NoError(t, err)
		assert.True(t, outcome.Success)
		assert.Equal(t, "hello\n", outcome.Output)
	})

	t.Run("combined output and exit status", func(t *testing.T) {
		outcome, err := executorUnderTest.Run(context.Background(),
			types.Argv("sh", "-c", "echo out; echo err >&2; exit 3"))
		require.NoError(t, err)
		assert.False(t, outcome.Success)
		assert.Equal(t, 3, outcome.ExitCode)
		assert.Contains(t, outcome.Output, "out")
		assert.Contains(t, outcome.Output, "err")
	})
}
