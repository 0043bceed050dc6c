package generate

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extractor unpacks an archive into a destination directory.
type Extractor interface {
	Extract(ctx context.Context, archivePath, destDir string) error
}

// Reporter receives per-entry extraction progress. ui.ProgressBar satisfies it.
type Reporter interface {
	Increment(n int)
	Done()
}

// ZipExtractor implements Extractor for zip archives.
type ZipExtractor struct {
	// Progress, when set, is called once with the entry count before
	// extraction starts.
	Progress func(total int) Reporter
}

// NewZipExtractor creates a ZipExtractor without progress reporting.
func NewZipExtractor() *ZipExtractor {
	return &ZipExtractor{}
}

// Extract unpacks every entry of archivePath below destDir, creating destDir
// when needed. Entries resolving outside destDir are rejected.
func (z *ZipExtractor) Extract(ctx context.Context, archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open zip archive: %w", err)
	}
	defer func() { _ = r.Close() }()

	root, err := filepath.Abs(destDir)
	if err != nil {
		return fmt.Errorf("resolve destination %q: %w", destDir, err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create destination %q: %w", destDir, err)
	}

	var rep Reporter
	if z.Progress != nil {
		rep = z.Progress(len(r.File))
		defer rep.Done()
	}

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := extractEntry(f, root); err != nil {
			return err
		}
		if rep != nil {
			rep.Increment(1)
		}
	}
	return nil
}

// extractEntry writes a single zip entry below root.
func extractEntry(f *zip.File, root string) error {
	target, err := safeJoin(root, f.Name)
	if err != nil {
		return err
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", f.Name, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", f.Name, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open zip entry %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create file %s: %w", f.Name, err)
	}

	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return fmt.Errorf("write file %s: %w", f.Name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close file %s: %w", f.Name, err)
	}
	return nil
}

// safeJoin joins an archive entry name onto root and rejects names that
// would escape it (zip slip).
func safeJoin(root, name string) (string, error) {
	target := filepath.Join(root, filepath.FromSlash(name))
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(name) {
		return "", fmt.Errorf("illegal path in archive: %s", name)
	}
	return target, nil
}
