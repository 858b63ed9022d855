// Package walk linearizes a filesystem subtree into an ordered path list.
package walk

import (
	"os"
	"path/filepath"
)

// Linearize flattens the subtree rooted at root into depth-first pre-order:
// the root first, then each directory's children (in os.ReadDir name order)
// immediately after their parent. Every visited object appears in the list,
// whatever its kind.
//
// The walk keeps an explicit stack of pending paths, so the supported tree
// depth is bounded by memory rather than call-stack depth.
func Linearize(root string) ([]string, error) {
	order := make([]string, 0, 64)
	stack := []string{root}

	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, path)

		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			continue
		}

		children, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		// Push in reverse so the first child is popped first.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, filepath.Join(path, children[i].Name()))
		}
	}

	return order, nil
}
