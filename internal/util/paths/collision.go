package paths

import (
	"fmt"
	"strings"

	"github.com/rescale/rescale-util/internal/util/filename"
)

// Target is a file to be written locally, identified by ID.
type Target struct {
	ID        string // Unique identifier (remote file ID, timestamp, ...)
	Name      string // Original filename
	LocalPath string // Full local destination path
	Size      int64
}

// ResolveCollisions makes all LocalPaths unique. Paths are compared in
// normalized form, so "C:\out\a.txt" and "C:/out/a.txt" collide. Every target
// in a colliding group gets "_<ID>" inserted before its extension:
//
//	output.zip     -> output_ABC123.zip
//	results.tar.gz -> results_ABC123.tar.gz
//
// Returns the same slice, modified in place, and the number of targets that
// were involved in collisions.
func ResolveCollisions(targets []Target) ([]Target, int) {
	if len(targets) == 0 {
		return targets, 0
	}

	groups := make(map[string][]int)
	var order []string
	for i, t := range targets {
		key := Normalize(t.LocalPath)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	collisions := 0
	for _, key := range order {
		indices := groups[key]
		if len(indices) <= 1 {
			continue
		}
		collisions += len(indices)
		for _, idx := range indices {
			t := &targets[idx]
			t.LocalPath = withSuffix(t.LocalPath, t.ID)
		}
	}

	return targets, collisions
}

// withSuffix inserts "_"+suffix between base name and extension. Only the last
// path element is examined so dots in directory names are left alone.
func withSuffix(path, suffix string) string {
	i := strings.LastIndexAny(path, separators)
	dir, name := path[:i+1], path[i+1:]
	base, _ := filename.Split(name)
	// name[len(base):] keeps the original spelling of the extension.
	return fmt.Sprintf("%s%s_%s%s", dir, base, suffix, name[len(base):])
}
