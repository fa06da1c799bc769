// Package tree renders dependency results as terminal trees.
package tree

import (
	"slices"

	"github.com/charmbracelet/lipgloss/tree"
	"go.trai.ch/packager/internal/core/domain"
	"go.trai.ch/packager/internal/ui/style"
)

// Render returns result as a tree rooted at root, children sorted by name.
func Render(root string, result domain.DependencyResult) string {
	if len(result.Dependencies) == 0 {
		return style.Root.Render(root) + style.Version.Render(" (no production dependencies)")
	}

	t := tree.Root(style.Root.Render(root)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(style.Branch)
	appendChildren(t, result.Dependencies)
	return t.String()
}

func appendChildren(t *tree.Tree, deps map[string]domain.Dependency) {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		dep := deps[name]
		if len(dep.Dependencies) == 0 {
			t.Child(label(name, dep.Version))
			continue
		}

		child := tree.Root(label(name, dep.Version)).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(style.Branch)
		appendChildren(child, dep.Dependencies)
		t.Child(child)
	}
}

func label(name, version string) string {
	if version == "" {
		return style.Name.Render(name)
	}
	return style.Name.Render(name) + " " + style.Version.Render(version)
}
