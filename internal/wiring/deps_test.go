package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packager/internal/adapters/telemetry/progrock"
	"go.trai.ch/packager/internal/app"
	_ "go.trai.ch/packager/internal/wiring"
)

// TestGraph_ResolvesComponents resolves the registered nodes the way the CLI
// does and checks the resulting application is backed by the pnpm packager.
func TestGraph_ResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)

	assert.NotNil(t, components.Logger)
	assert.IsType(t, &progrock.Recorder{}, components.Telemetry)

	require.NotNil(t, components.App)
	info := components.App.Info()
	assert.Equal(t, "shrinkwrap.yaml", info.LockfileName)
	assert.Equal(t, []string{"resolutions"}, info.CopyPackageSectionNames)
	assert.False(t, info.MustCopyModules)
}
