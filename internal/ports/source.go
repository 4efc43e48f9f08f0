package ports

import (
	"context"
	"io"
)

// TableSource extracts the raw cell grid of the first table found in a statement document.
// Rows are returned exactly as they appear, including metadata and header rows.
type TableSource interface {
	ReadTable(ctx context.Context, r io.Reader) ([][]string, error)
}
