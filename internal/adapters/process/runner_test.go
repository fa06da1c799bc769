package process_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packager/internal/adapters/process"
	"go.trai.ch/packager/internal/core/domain"
	"go.trai.ch/packager/internal/core/ports"
	"go.trai.ch/packager/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunner_Spawn_CapturesOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	runner := process.NewRunner(mockLogger)

	out, err := runner.Spawn(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"}, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "out\n", out.Stdout)
	assert.Equal(t, "err\n", out.Stderr)
}

func TestRunner_Spawn_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("here"), 0o600))

	runner := process.NewRunner(mockLogger)

	out, err := runner.Spawn(context.Background(), "sh", []string{"-c", "cat marker.txt"}, dir)
	require.NoError(t, err)
	assert.Equal(t, "here", out.Stdout)
}

func TestRunner_Spawn_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	runner := process.NewRunner(mockLogger)

	out, err := runner.Spawn(context.Background(), "sh", []string{"-c", "echo partial; echo broken >&2; exit 42"}, t.TempDir())
	require.Error(t, err)

	var procErr *domain.ProcessError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, 42, procErr.ExitCode)
	assert.Equal(t, "partial\n", procErr.Stdout)
	assert.Equal(t, "broken\n", procErr.Stderr)
	assert.Equal(t, "partial\n", out.Stdout)
	assert.Contains(t, procErr.Message(), "exited with code 42")

	var exitErr *exec.ExitError
	assert.True(t, errors.As(err, &exitErr))
}

func TestRunner_Spawn_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	runner := process.NewRunner(mockLogger)

	_, err := runner.Spawn(context.Background(), "nonexistent-command-xyz123", nil, t.TempDir())
	require.Error(t, err)

	var procErr *domain.ProcessError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, -1, procErr.ExitCode)
	assert.Equal(t, "nonexistent-command-xyz123 did not complete", procErr.Message())
}

func TestRunner_Spawn_StreamsIntoVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	var vertexOut, vertexErr bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stdout().Return(&vertexOut).Times(1)
	mockVertex.EXPECT().Stderr().Return(&vertexErr).Times(1)

	ctx := ports.ContextWithVertex(context.Background(), mockVertex)
	runner := process.NewRunner(mockLogger)

	out, err := runner.Spawn(ctx, "sh", []string{"-c", "echo visible; echo warn >&2"}, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "visible\n", out.Stdout)
	assert.Equal(t, "visible\n", vertexOut.String())
	assert.Equal(t, "warn\n", vertexErr.String())
}

func TestRunner_Spawn_LogsCommandLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("sh -c 'exit 0' (in " + dir + ")").Times(1)

	runner := process.NewRunner(mockLogger)

	_, err := runner.Spawn(context.Background(), "sh", []string{"-c", "exit 0"}, dir)
	require.NoError(t, err)
}

func TestRunner_Spawn_CancelDoesNotWaitForGrandchildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	runner := process.NewRunner(mockLogger)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := runner.Spawn(ctx, "sh", []string{"-c", "sleep 30 & wait"}, t.TempDir())
	elapsed := time.Since(start)

	var procErr *domain.ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, -1, procErr.ExitCode)
	assert.Less(t, elapsed, 10*time.Second)
}

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"pnpm", []string{"install", "--non-interactive"}, "pnpm install --non-interactive"},
		{"pnpm", []string{"run", "my script"}, "pnpm run 'my script'"},
		{"pnpm", []string{"run", ""}, "pnpm run ''"},
		{"pnpm.cmd", nil, "pnpm.cmd"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, process.CommandLine(tt.name, tt.args))
		})
	}
}
