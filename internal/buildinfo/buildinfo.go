// Package buildinfo derives the tool and revision strings stamped into
// netlist and BOM headers.
package buildinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Version is set via -ldflags at release time.
var Version = "dev"

// Tool returns the tool string for netlist headers.
func Tool(name string) string {
	return fmt.Sprintf("%s %s", name, Version)
}

// Revision returns a short identifier of the working tree the netlists were
// generated from: the abbreviated HEAD commit, with "-dirty" appended when
// the tree has uncommitted changes. Outside a git repository it returns
// fallback.
func Revision(dir, fallback string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fallback
	}
	head, err := repo.Head()
	if err != nil {
		return fallback
	}
	rev := head.Hash().String()[:8]

	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil && !status.IsClean() {
			rev += "-dirty"
		}
	}
	return rev
}
