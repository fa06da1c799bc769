package pnpm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/packager/internal/adapters/pnpm"
)

const lockfileFixture = `
acorn@^2.1.0, acorn@^2.4.0:
  version "2.7.0"
  resolved "https://registry.yarnpkg.com/acorn/-/acorn-2.7.0.tgz#ab6e7d9d886aaca8b085bc3312b79a198433f0e7"

otherModule@file:../../otherModule/the-new-version:
  version "1.2.0"

"@myCompany/myModule@../../myModule/the-new-version":
  version "6.1.0"
  dependencies:
    bluebird "^3.5.1"
    lodash "^4.17.4"

acorn@^5.0.0, acorn@^5.5.0:
  version "5.5.3"
`

const rebasedFixture = `
acorn@^2.1.0, acorn@^2.4.0:
  version "2.7.0"
  resolved "https://registry.yarnpkg.com/acorn/-/acorn-2.7.0.tgz#ab6e7d9d886aaca8b085bc3312b79a198433f0e7"

otherModule@file:../../project/../../otherModule/the-new-version:
  version "1.2.0"

"@myCompany/myModule@../../project/../../myModule/the-new-version":
  version "6.1.0"
  dependencies:
    bluebird "^3.5.1"
    lodash "^4.17.4"

acorn@^5.0.0, acorn@^5.5.0:
  version "5.5.3"
`

func TestRebaseLockfile(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		lockfile string
		want     string
	}{
		{
			name:     "no references",
			root:     ".",
			lockfile: "eugfogfoigqwoeifgoqwhhacvaisvciuviwefvc",
			want:     "eugfogfoigqwoeifgoqwhhacvaisvciuviwefvc",
		},
		{
			name:     "empty",
			root:     "../../project",
			lockfile: "",
			want:     "",
		},
		{
			name:     "file and bare references",
			root:     "../../project",
			lockfile: lockfileFixture,
			want:     rebasedFixture,
		},
		{
			name:     "current directory root",
			root:     ".",
			lockfile: "local@file:./packages/local:\n",
			want:     "local@file:././packages/local:\n",
		},
		{
			name:     "back-slashes normalized",
			root:     `..\..\project`,
			lockfile: "dep@file:../dep,\n",
			want:     "dep@file:../../project/../dep,\n",
		},
		{
			name:     "quoted scoped name is not a reference",
			root:     "../root",
			lockfile: `"@scope/pkg@^1.0.0":` + "\n",
			want:     `"@scope/pkg@^1.0.0":` + "\n",
		},
		{
			name:     "every occurrence rewritten once",
			root:     "../root",
			lockfile: "a@file:../shared:\nb@file:../shared:\n  resolved ../shared\n",
			want:     "a@file:../root/../shared:\nb@file:../root/../shared:\n  resolved ../root/../shared\n",
		},
		{
			name:     "longer reference wins over its prefix",
			root:     "r",
			lockfile: "a@../lib:\nb@../lib/extra:\n",
			want:     "a@r/../lib:\nb@r/../lib/extra:\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pnpm.RebaseLockfile(tt.root, tt.lockfile))
		})
	}
}

func TestRebaseLockfile_Idempotent(t *testing.T) {
	assert.Equal(t,
		pnpm.RebaseLockfile(".", "plain text without references"),
		pnpm.RebaseLockfile(".", pnpm.RebaseLockfile(".", "plain text without references")),
	)
}

func TestPackager_RebaseLockfile(t *testing.T) {
	p, _, _ := newPackager(t)

	assert.Equal(t, rebasedFixture, p.RebaseLockfile("../../project", lockfileFixture))
}

func TestResolveExecutableName(t *testing.T) {
	assert.Equal(t, "pnpm.cmd", pnpm.ResolveExecutableName("windows"))
	assert.Equal(t, "pnpm", pnpm.ResolveExecutableName("linux"))
	assert.Equal(t, "pnpm", pnpm.ResolveExecutableName("darwin"))
}
