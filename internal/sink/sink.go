// Package sink delivers the rendered message to the terminal or a file.
package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"roost/internal/trace"
)

// ErrOutput marks every failure to deliver the message.
var ErrOutput = errors.New("output failure")

const defaultFileMode fs.FileMode = 0o644

// Deliver writes data to path, or to stdout when path is empty.
func Deliver(ctx context.Context, data []byte, path string, stdout io.Writer) error {
	t := trace.FromContext(ctx)
	span := trace.Begin(t, trace.ScopeStage, "write", trace.CurrentSpan(ctx))

	target := "stdout"
	var err error
	if path == "" {
		err = WriteStream(stdout, data)
	} else {
		target = path
		err = WriteFile(path, data)
	}
	span.WithExtra("target", target).WithExtra("bytes", fmt.Sprint(len(data))).End("")
	if err != nil {
		trace.Error(t, "write", err)
	}
	return err
}

// WriteStream writes data to w in full.
func WriteStream(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

// WriteFile opens path for writing, creating or truncating it, and stores
// data there. Symlinks are followed to their target. Regular files are
// written through a temp file next to the target and renamed into place, so
// a failure never leaves a half-written file. Devices, pipes and files in
// directories roost cannot create entries in are written directly.
func WriteFile(path string, data []byte) error {
	target, err := resolveTarget(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	mode := defaultFileMode
	info, err := os.Stat(target)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%w: %s is a directory", ErrOutput, path)
	case err == nil && !info.Mode().IsRegular():
		return writeDirect(target, data, mode)
	case err == nil:
		mode = info.Mode().Perm()
		// права проверяем так же, как их проверил бы open(2)
		f, err := os.OpenFile(target, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		_ = f.Close()
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return writeDirect(target, data, mode)
		}
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	tmp := f.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrOutput, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrOutput, path, err)
	}
	if err := os.Chmod(tmp, mode); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	// Атомарная замена
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	committed = true
	return nil
}

// resolveTarget follows symlinks in path. A dangling link resolves to the
// file it names, so that file gets created.
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	link, err := os.Readlink(path)
	if err != nil {
		return path, nil
	}
	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(path), link)
	}
	return link, nil
}

func writeDirect(path string, data []byte, mode fs.FileMode) (err error) {
	// #nosec G304 -- path is provided by the user on purpose
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrOutput, path, cerr)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrOutput, path, err)
	}
	return nil
}
