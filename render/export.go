package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flowpaint/scene"
)

// Export writes the surface to path as PNG. The destination directory must
// already exist; when it does not, the returned error satisfies
// errors.Is(err, fs.ErrNotExist). The file appears atomically: a failed
// export leaves nothing behind.
func Export(s *Surface, path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "export", Path: dir, Err: os.ErrInvalid}
	}

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// RenderFile renders sc and exports it to path.
func (r *Renderer) RenderFile(sc *scene.Scene, path string) error {
	start := time.Now()
	s, err := r.Render(sc)
	if err != nil {
		return err
	}
	if err := Export(s, path); err != nil {
		return err
	}
	r.opts.Logger.Debug().
		Str("path", path).
		Dur("took", time.Since(start)).
		Msg("diagram exported")
	return nil
}
