// Package ports defines the interfaces between the domain and the
// network/filesystem infrastructure.
package ports

import (
	"context"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
)

// Resolver turns an abstract plugin descriptor into a concrete download.
// Failures, including transport errors, are reported through the tagged
// Resolution value so callers can distinguish retryable from terminal ones.
type Resolver interface {
	Resolve(ctx context.Context, d catalog.Descriptor) artifact.Resolution
}

// Fetcher retrieves a resolved URL to a destination directory. Archive
// payloads are extracted in place and the archive is discarded; the returned
// path is the saved file, or the destination directory after extraction.
type Fetcher interface {
	Fetch(ctx context.Context, url, filename, destDir string) (string, error)
}
