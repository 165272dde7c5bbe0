package hg

import (
	"context"
	"errors"
	"strings"

	"hglib.dev/hglib/hgerrors"
)

// Paths returns the configured remote repositories as a name → URL/path
// mapping.
func (r *Repo) Paths() (map[string]string, error) {
	out, err := r.run("paths")
	if err != nil {
		return nil, err
	}
	return parsePaths(out), nil
}

// parsePaths decodes "hg paths" output, one "name = location" per line.
func parsePaths(out string) map[string]string {
	remotes := map[string]string{}
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		name, location, ok := strings.Cut(line, " = ")
		if !ok {
			continue
		}
		remotes[name] = location
	}
	return remotes
}

// Outgoing returns the changesets not present in the named remote.
func (r *Repo) Outgoing(ctx context.Context, remote string) ([]Revision, error) {
	return r.remoteChanges(ctx, "outgoing", remote)
}

// Incoming returns the changesets in the named remote not present
// locally.
func (r *Repo) Incoming(ctx context.Context, remote string) ([]Revision, error) {
	return r.remoteChanges(ctx, "incoming", remote)
}

// remoteChanges runs outgoing/incoming against a configured remote. The
// remote name is validated against Paths before hg is invoked. hg
// signals "no changes found" with exit status 1, which is absorbed into
// an empty result; any other failure propagates.
func (r *Repo) remoteChanges(ctx context.Context, command, remote string) ([]Revision, error) {
	paths, err := r.Paths()
	if err != nil {
		return nil, err
	}
	if _, ok := paths[remote]; !ok {
		return nil, hgerrors.NewRemoteNotFoundError(remote)
	}

	out, err := r.runner.RunRaw(ctx, command, remote, "--template", revLogTemplate)
	if err != nil {
		var cmdErr *hgerrors.CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode == 1 {
			return []Revision{}, nil
		}
		return nil, err
	}

	// The command prefixes the template output with "comparing with"
	// chatter; only lines opened by the template's brace are records.
	revs := []Revision{}
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "{") {
			continue
		}
		rev, err := parseRevision(line)
		if err != nil {
			return nil, err
		}
		revs = append(revs, rev)
	}
	return revs, nil
}
