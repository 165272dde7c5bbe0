package hg

import (
	"context"
)

// Pull pulls changes from the named source, or from the default path
// when source is empty.
func (r *Repo) Pull(ctx context.Context, source string) error {
	args := []string{"pull"}
	if source != "" {
		args = append(args, source)
	}
	_, err := r.runner.Run(ctx, args...)
	return err
}
