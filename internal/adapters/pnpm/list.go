package pnpm

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"go.trai.ch/packager/internal/core/domain"
	"go.trai.ch/zerr"
)

// listOutput is the tree document printed by pnpm list --parseable.
type listOutput struct {
	Type string `json:"type"`
	Data struct {
		Type  string     `json:"type"`
		Trees []listTree `json:"trees"`
	} `json:"data"`
}

type listTree struct {
	Name     string     `json:"name"`
	Children []listTree `json:"children"`
}

// ProdDependencies lists the production dependencies installed in dir.
//
// A depth of zero or less lists direct dependencies only. A failing pnpm list
// whose stderr holds nothing but ignorable lines and whose stdout is non-empty
// is treated as successful, using the captured stdout. A listing that was
// cancelled or killed is never recovered.
func (p *Packager) ProdDependencies(ctx context.Context, dir string, depth int) (domain.DependencyResult, error) {
	if depth <= 0 {
		depth = 1
	}
	args := []string{
		"list",
		"--depth=" + strconv.Itoa(depth),
		"--parseable",
		"--production",
	}

	out, err := p.runner.Spawn(ctx, p.command, args, dir)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.DependencyResult{}, ctxErr
		}
		stdout, ok := p.recoverListing(err)
		if !ok {
			return domain.DependencyResult{}, err
		}
		p.logger.Warn("pnpm list reported ignorable errors, using its output")
		out.Stdout = stdout
	}

	deps, err := parseListOutput(out.Stdout)
	if err != nil {
		parseErr := zerr.Wrap(err, domain.ErrListOutputInvalid.Error())
		return domain.DependencyResult{}, zerr.With(parseErr, "dir", dir)
	}

	result := domain.NewDependencyResult()
	result.Dependencies = deps
	return result, nil
}

// recoverListing returns the stdout of a failed listing when pnpm exited with
// a status and every stderr line is ignorable.
func (p *Packager) recoverListing(err error) (string, bool) {
	var procErr *domain.ProcessError
	if !errors.As(err, &procErr) || procErr.ExitCode <= 0 {
		return "", false
	}

	for _, line := range strings.Split(procErr.Stderr, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" && !p.isIgnoredListError(line) {
			return "", false
		}
	}

	if procErr.Stdout == "" {
		return "", false
	}
	return procErr.Stdout, true
}

func (p *Packager) isIgnoredListError(line string) bool {
	for _, prefix := range p.ignoredListErrors {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// parseListOutput converts pnpm list output into a dependency mapping.
// Blank output yields an empty mapping.
func parseListOutput(stdout string) (map[string]domain.Dependency, error) {
	if strings.TrimSpace(stdout) == "" {
		return map[string]domain.Dependency{}, nil
	}

	var output listOutput
	if err := json.Unmarshal([]byte(stdout), &output); err != nil {
		return nil, err
	}
	return convertTrees(output.Data.Trees), nil
}

// convertTrees maps each tree by package name. The first occurrence of a name wins.
func convertTrees(trees []listTree) map[string]domain.Dependency {
	deps := make(map[string]domain.Dependency, len(trees))
	for _, tree := range trees {
		name, version := splitNameVersion(tree.Name)
		if _, exists := deps[name]; exists {
			continue
		}
		deps[name] = domain.Dependency{
			Version:      version,
			Dependencies: convertTrees(tree.Children),
		}
	}
	return deps
}

// splitNameVersion splits "name@version" on the last "@".
// A leading "@" belongs to a scoped name and never separates a version.
func splitNameVersion(token string) (name, version string) {
	i := strings.LastIndex(token, "@")
	if i <= 0 {
		return token, ""
	}
	return token[:i], token[i+1:]
}
