package domain

// Dependency is one resolved package together with its transitive production dependencies.
// It is keyed by package name in its parent's Dependencies map; scoped names
// such as "@scope/name" are valid keys.
type Dependency struct {
	// Version is the resolved version string (e.g., "1.0.0").
	Version string `json:"version"`

	// Dependencies maps package names to their resolved child dependencies.
	Dependencies map[string]Dependency `json:"dependencies"`
}

// DependencyResult is the outcome of a production dependency query.
type DependencyResult struct {
	// Problems carries non-fatal warnings reported while listing. Empty when none.
	Problems []string `json:"problems"`

	// Dependencies maps the names of direct dependencies to their resolved trees.
	Dependencies map[string]Dependency `json:"dependencies"`
}

// NewDependencyResult returns an empty result with non-nil collections.
func NewDependencyResult() DependencyResult {
	return DependencyResult{
		Problems:     []string{},
		Dependencies: map[string]Dependency{},
	}
}
