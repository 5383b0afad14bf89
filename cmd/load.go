package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bgraf/exifview/data"
	"github.com/bgraf/exifview/images"
)

// decodeFile reads the EXIF metadata of the image at path.
func decodeFile(ctx context.Context, path string) (*data.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snapshot, err := images.NewEXIFDecoder().Decode(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("no metadata in '%s': %w", path, err)
	}

	return snapshot, nil
}
