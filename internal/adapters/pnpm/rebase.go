package pnpm

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// fileReferencePattern matches a dependency reference to a relative path, such as
// pkg@file:../pkg or "@scope/pkg@./pkg", capturing the path up to the closing quote, colon or comma.
var fileReferencePattern = regexp.MustCompile(`[^"/]@(?:file:)?((?:\./|\.\./).*?)[":,]`)

// RebaseLockfile prefixes every relative file reference in lockfile with pathToPackageRoot.
//
// Each distinct referenced path is rewritten at every place it occurs, in a single
// pass, so a rewritten path is never rewritten again. Back-slashes in the result are
// normalized to forward slashes. Text without references is returned unchanged.
func RebaseLockfile(pathToPackageRoot, lockfile string) string {
	matches := fileReferencePattern.FindAllStringSubmatch(lockfile, -1)
	if len(matches) == 0 {
		return lockfile
	}

	seen := make(map[string]struct{}, len(matches))
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		refs = append(refs, m[1])
	}

	// Longer references take precedence where one is a prefix of another.
	slices.SortStableFunc(refs, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	pairs := make([]string, 0, 2*len(refs))
	for _, ref := range refs {
		pairs = append(pairs, ref, strings.ReplaceAll(pathToPackageRoot+"/"+ref, `\`, "/"))
	}
	return strings.NewReplacer(pairs...).Replace(lockfile)
}
