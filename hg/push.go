package hg

import (
	"context"
)

// Push pushes changes to the named destination, or to the default path
// when destination is empty.
func (r *Repo) Push(ctx context.Context, destination string) error {
	args := []string{"push"}
	if destination != "" {
		args = append(args, destination)
	}
	_, err := r.runner.Run(ctx, args...)
	return err
}
