package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packager/cmd/packager/commands"
	"go.trai.ch/packager/internal/app"
	"go.trai.ch/packager/internal/core/domain"
	"go.trai.ch/packager/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	loader   *mocks.MockConfigLoader
	packager *mocks.MockPackager
	logger   *mocks.MockLogger
}

func setupCLI(t *testing.T, args ...string) (*commands.CLI, *bytes.Buffer, cliMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := cliMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		packager: mocks.NewMockPackager(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	packagers := mocks.NewMockPackagerFactory(ctrl)
	packagers.EXPECT().NewPackager(gomock.Any()).Return(m.packager).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	cli := commands.New(app.New(m.loader, packagers, m.logger))
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs(args)
	return cli, out, m
}

func TestDeps_Tree(t *testing.T) {
	cli, out, m := setupCLI(t, "deps", "--dir", "proj", "--depth", "2")

	result := domain.NewDependencyResult()
	result.Dependencies["archiver"] = domain.Dependency{Version: "2.1.1", Dependencies: map[string]domain.Dependency{}}

	m.loader.EXPECT().Load(filepath.Join("proj", domain.DefaultConfigFilename)).Return(domain.DefaultConfig(), nil)
	m.packager.EXPECT().ProdDependencies(gomock.Any(), "proj", 2).Return(result, nil)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "proj")
	assert.Contains(t, out.String(), "archiver 2.1.1")
}

func TestDeps_JSON(t *testing.T) {
	cli, out, m := setupCLI(t, "deps", "--json")

	result := domain.NewDependencyResult()
	result.Dependencies["@sls/webpack"] = domain.Dependency{Version: "1.0.0", Dependencies: map[string]domain.Dependency{}}

	m.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
	m.packager.EXPECT().ProdDependencies(gomock.Any(), ".", 1).Return(result, nil)

	require.NoError(t, cli.Execute(context.Background()))

	var decoded domain.DependencyResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, result, decoded)
}

func TestInstall_IgnoreScripts(t *testing.T) {
	cli, _, m := setupCLI(t, "install", "--ignore-scripts")

	m.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
	m.packager.EXPECT().Install(gomock.Any(), ".", domain.PackagerOptions{IgnoreScripts: true}).Return(nil)

	require.NoError(t, cli.Execute(context.Background()))
}

func TestPrune(t *testing.T) {
	cli, _, m := setupCLI(t, "prune", "-C", "proj")

	m.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
	m.packager.EXPECT().Prune(gomock.Any(), "proj", domain.PackagerOptions{}).Return(nil)

	require.NoError(t, cli.Execute(context.Background()))
}

func TestRun_Scripts(t *testing.T) {
	cli, _, m := setupCLI(t, "run", "lint", "build")

	m.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
	m.packager.EXPECT().RunScripts(gomock.Any(), ".", []string{"lint", "build"}).Return(nil)

	require.NoError(t, cli.Execute(context.Background()))
}

func TestRun_NoScripts(t *testing.T) {
	cli, out, m := setupCLI(t, "run")

	m.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_CustomConfig(t *testing.T) {
	cli, _, m := setupCLI(t, "--config", "ci.yaml", "run")
	cfg := domain.DefaultConfig()
	cfg.Scripts = []string{"package"}

	m.loader.EXPECT().Load("ci.yaml").Return(cfg, nil)
	m.packager.EXPECT().RunScripts(gomock.Any(), ".", []string{"package"}).Return(nil)

	require.NoError(t, cli.Execute(context.Background()))
}

func TestRebase(t *testing.T) {
	from := t.TempDir()
	to := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(from, "shrinkwrap.yaml"), []byte("lock"), 0o600))

	cli, _, m := setupCLI(t, "rebase", "--from", from, "--to", to, "--root", "../app")

	m.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
	m.packager.EXPECT().LockfileName().Return("shrinkwrap.yaml")
	m.packager.EXPECT().RebaseLockfile("../app", "lock").Return("rebased lock")

	require.NoError(t, cli.Execute(context.Background()))

	got, err := os.ReadFile(filepath.Join(to, "shrinkwrap.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "rebased lock", string(got))
}

func TestRebase_CustomConfig(t *testing.T) {
	from := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(from, "shrinkwrap.yaml"), []byte("lock"), 0o600))

	cli, _, m := setupCLI(t, "-c", "ci.yaml", "rebase", "--from", from, "--to", t.TempDir(), "--root", "..")

	m.loader.EXPECT().Load(filepath.Join(from, "ci.yaml")).Return(domain.DefaultConfig(), nil)
	m.packager.EXPECT().LockfileName().Return("shrinkwrap.yaml")
	m.packager.EXPECT().RebaseLockfile("..", "lock").Return("lock")

	require.NoError(t, cli.Execute(context.Background()))
}

func TestRebase_RequiresFlags(t *testing.T) {
	cli, _, _ := setupCLI(t, "rebase", "--from", "a")

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestInfo(t *testing.T) {
	cli, out, m := setupCLI(t, "info")

	m.packager.EXPECT().LockfileName().Return("shrinkwrap.yaml")
	m.packager.EXPECT().CopyPackageSectionNames().Return([]string{"resolutions"})
	m.packager.EXPECT().MustCopyModules().Return(false)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "shrinkwrap.yaml")
	assert.Contains(t, out.String(), "resolutions")
	assert.Contains(t, out.String(), "false")
}

func TestInfo_JSON(t *testing.T) {
	cli, out, m := setupCLI(t, "info", "--json")

	m.packager.EXPECT().LockfileName().Return("shrinkwrap.yaml")
	m.packager.EXPECT().CopyPackageSectionNames().Return([]string{"resolutions"})
	m.packager.EXPECT().MustCopyModules().Return(false)

	require.NoError(t, cli.Execute(context.Background()))
	assert.JSONEq(t,
		`{"lockfileName":"shrinkwrap.yaml","copyPackageSectionNames":["resolutions"],"mustCopyModules":false}`,
		out.String(),
	)
}

func TestJSONLogsHook(t *testing.T) {
	cli, _, _ := setupCLI(t, "--json-logs", "version")

	var got bool
	cli.SetJSONLogsHook(func(enabled bool) { got = enabled })

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, got)
}

func TestVersion(t *testing.T) {
	cli, out, _ := setupCLI(t, "version")

	require.NoError(t, cli.Execute(context.Background()))
	assert.NotEmpty(t, out.String())
}
