package pnpm

const (
	executable = "pnpm"
	windows    = "windows"
)

// ResolveExecutableName returns the pnpm executable name for goos.
// Windows installs pnpm as a .cmd shim.
func ResolveExecutableName(goos string) string {
	if goos == windows {
		return executable + ".cmd"
	}
	return executable
}
