// Package buckets models the host build tool's named dependency buckets and
// the three mutually exclusive postures a bucket can take: declarable (users
// add dependencies to it), consumable (other modules read it), resolvable
// (it can be flattened into concrete artifact files).
package buckets

import (
	"context"
	"fmt"

	"github.com/docbridge/docbridge/internal/capability"
	"github.com/docbridge/docbridge/internal/ctxlog"
)

// Posture is one of the three roles a dependency bucket can play.
type Posture int

const (
	// Declarable buckets are the raw buckets users declare dependencies
	// into. They cannot be resolved or consumed directly.
	Declarable Posture = iota
	// Consumable buckets are visible to other modules but cannot be
	// resolved or declared into.
	Consumable
	// Resolvable buckets flatten to a concrete artifact file set and are
	// neither consumable nor declarable.
	Resolvable
)

func (p Posture) String() string {
	switch p {
	case Declarable:
		return "declarable"
	case Consumable:
		return "consumable"
	case Resolvable:
		return "resolvable"
	default:
		return "unknown"
	}
}

// ParsePosture is the inverse of Posture.String.
func ParsePosture(s string) (Posture, error) {
	switch s {
	case "declarable":
		return Declarable, nil
	case "consumable":
		return Consumable, nil
	case "resolvable":
		return Resolvable, nil
	default:
		return 0, fmt.Errorf("unknown bucket posture %q", s)
	}
}

// Bucket is one named dependency bucket. Artifacts holds the files the host
// resolved for it; for declaration-only buckets it stays empty.
type Bucket struct {
	Name      string
	Artifacts []string

	CanBeConsumed bool
	CanBeResolved bool
	// CanBeDeclared is nil on hosts whose API predates the flag; the
	// posture is then governed by the other two flags alone.
	CanBeDeclared *bool
}

// Configure applies a posture to the bucket. The can-be-declared flag is
// only touched when the host supports it; on older hosts it is left as-is.
func (b *Bucket) Configure(posture Posture, probe *capability.Probe) {
	switch posture {
	case Declarable:
		b.CanBeConsumed = false
		b.CanBeResolved = false
		b.setDeclared(true, probe)
	case Consumable:
		b.CanBeConsumed = true
		b.CanBeResolved = false
		b.setDeclared(false, probe)
	case Resolvable:
		b.CanBeConsumed = false
		b.CanBeResolved = true
		b.setDeclared(false, probe)
	}
}

func (b *Bucket) setDeclared(v bool, probe *capability.Probe) {
	if !probe.DeclarableFlag().Enabled() {
		return
	}
	b.CanBeDeclared = &v
}

// Container is a named lookup of a module's buckets.
type Container struct {
	byName map[string]*Bucket
}

// NewContainer creates an empty bucket container.
func NewContainer() *Container {
	return &Container{byName: make(map[string]*Bucket)}
}

// Add registers a bucket under its name, replacing any previous bucket with
// the same name.
func (c *Container) Add(b *Bucket) {
	c.byName[b.Name] = b
}

// Lookup returns the named bucket, if present.
func (c *Container) Lookup(name string) (*Bucket, bool) {
	b, ok := c.byName[name]
	return b, ok
}

// Len returns the number of buckets in the container.
func (c *Container) Len() int {
	return len(c.byName)
}

// AppendResolvedArtifacts appends the named bucket's resolved artifact files
// to dest, lazily: the bucket's artifact list is read when dest is resolved,
// not now. Missing buckets and buckets that are not resolvable contribute
// nothing and raise no error; downstream consumers tolerate partial
// artifact sets.
func AppendResolvedArtifacts(ctx context.Context, c *Container, name string, dest *FileCollection) {
	logger := ctxlog.FromContext(ctx)

	if c == nil {
		return
	}
	bucket, ok := c.Lookup(name)
	if !ok {
		logger.Debug("Dependency bucket not found, contributing no artifacts.", "bucket", name)
		return
	}
	if !bucket.CanBeResolved {
		logger.Debug("Dependency bucket is not resolvable, contributing no artifacts.", "bucket", name)
		return
	}

	dest.Append(func() ([]string, error) {
		files := make([]string, len(bucket.Artifacts))
		copy(files, bucket.Artifacts)
		return files, nil
	})
}
