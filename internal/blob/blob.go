// Package blob archives exported application snapshots to a pluggable
// object store so a backup survives the process that produced it.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Driver identifies a blob store implementation.
type Driver string

const (
	DriverMemory     Driver = "memory"
	DriverFilesystem Driver = "filesystem"
	DriverS3         Driver = "s3"
)

// ErrNotFound is returned when a requested archive key does not exist.
var ErrNotFound = errors.New("blob: not found")

// Info describes one archived object.
type Info struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Store is the archive surface used by the backup exporter. Put overwrites:
// re-exporting on the same day replaces that day's archive rather than
// failing.
type Store interface {
	Driver() Driver
	Put(ctx context.Context, key string, r io.Reader, contentType string) (Info, error)
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	List(ctx context.Context, prefix string) ([]Info, error)
	Delete(ctx context.Context, key string) (bool, error)
}

// Config selects and parameterizes a driver.
type Config struct {
	Driver          Driver
	Root            string // filesystem root
	Bucket          string // s3
	Region          string // s3
	Endpoint        string // s3, optional (MinIO style)
	AccessKeyID     string // s3, optional static credentials
	SecretAccessKey string // s3, optional
	PathStyle       bool   // s3
}

// Open constructs the store named by cfg.Driver. An empty driver defaults to
// memory.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverFilesystem:
		return NewFilesystem(cfg.Root)
	case DriverS3:
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("blob: unknown driver %q", cfg.Driver)
	}
}
