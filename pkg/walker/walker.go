// Package walker enumerates the image files to be resized.
package walker

import (
	"io/fs"
	"path/filepath"

	derrors "downsizer/pkg/errors"
)

// ImageFile is one discovered image file.
type ImageFile struct {
	// Path is the absolute path to the file on disk
	Path string

	// RelPath is the path relative to the walk root
	RelPath string

	// Size is the file size in bytes
	Size int64
}

// Walker recursively finds files matching an extension allow-list.
type Walker struct {
	extensions map[string]bool
}

// New creates a Walker for the given extensions. Matching is
// case-sensitive: ".JPG" is not ".jpg".
func New(extensions []string) *Walker {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[ext] = true
	}
	return &Walker{extensions: allowed}
}

// Walk returns every matching file under root. The full list is collected
// up front so callers know the total before processing starts. Order is
// whatever the filesystem yields.
func (w *Walker) Walk(root string) ([]ImageFile, error) {
	var files []ImageFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		if !w.extensions[filepath.Ext(path)] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files = append(files, ImageFile{
			Path:    path,
			RelPath: filepath.ToSlash(relPath),
			Size:    info.Size(),
		})

		return nil
	})
	if err != nil {
		return nil, derrors.New(derrors.ErrorTypeWalk, root, err)
	}

	return files, nil
}
