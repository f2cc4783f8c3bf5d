package api

import (
	"os"
	"path/filepath"

	"github.com/sarchlab/tapec/backend"
)

// Writer persists an artifact to a single sink identified by path.
type Writer interface {
	Write(path string, a backend.Artifact) error
}

// FileWriter writes artifacts to the file system. The output directory must
// already exist; an existing file is replaced.
type FileWriter struct{}

// Write stages a in a temporary file next to path and renames it into place
// once it is complete and closed. On any failure the temporary file is
// removed and whatever was at path before is left untouched.
func (FileWriter) Write(path string, a backend.Artifact) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}

	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err = f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}

	if _, err = a.WriteTo(f); err != nil {
		f.Close()
		return err
	}

	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
