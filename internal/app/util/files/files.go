package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"turboscribe/internal/app/media"
)

// FileInfo describes one media file found in an ingest directory.
type FileInfo struct {
	Name     string
	FullPath string
	Size     int64
}

// ListMediaFiles returns the supported media files directly under dir,
// oldest first so batch ingestion follows recording order.
func ListMediaFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	type fileWithTime struct {
		info    FileInfo
		modTime int64
	}

	found := make([]fileWithTime, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !media.IsSupportedFile(entry.Name()) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		found = append(found, fileWithTime{
			info: FileInfo{
				Name:     entry.Name(),
				FullPath: filepath.Join(dir, entry.Name()),
				Size:     fi.Size(),
			},
			modTime: fi.ModTime().UnixNano(),
		})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].modTime < found[j].modTime
	})

	result := make([]FileInfo, len(found))
	for i, f := range found {
		result[i] = f.info
	}
	return result, nil
}
