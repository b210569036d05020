package layout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vvka-141/depmap/internal/checksum"
	"github.com/vvka-141/depmap/internal/files/filesystem"
	"github.com/vvka-141/depmap/pkg/depmap"
)

// Converter materializes a Gradle cache as a Maven repository.
// Sources are read through a FileSystemProvider; the destination is always
// written to the OS filesystem.
type Converter struct {
	fsProvider filesystem.FileSystemProvider
	verifier   *checksum.Verifier
	logger     depmap.Logger
}

// NewConverter creates a converter reading from the OS filesystem.
// Panics if logger is nil.
func NewConverter(logger depmap.Logger) *Converter {
	return NewConverterWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewConverterWithFS creates a converter reading sources from fsProvider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewConverterWithFS(fsProvider filesystem.FileSystemProvider, logger depmap.Logger) *Converter {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Converter{
		fsProvider: fsProvider,
		verifier:   checksum.NewVerifier(fsProvider),
		logger:     logger,
	}
}

// Convert walks cfg.SourcePath and copies every version directory it finds into
// the Maven layout below cfg.DestinationPath. Re-running over a populated
// destination overwrites files in place.
//
// The returned error is non-nil when the run could not start (invalid config
// or keyring, missing source root, uncreatable destination root) or when ctx
// is cancelled, in which case the walk stops before the next directory or
// file. Per-directory problems are in the report.
func (c *Converter) Convert(ctx context.Context, cfg depmap.ConvertConfig) (depmap.ConvertReport, error) {
	if err := cfg.Validate(); err != nil {
		return depmap.ConvertReport{}, err
	}

	info, err := c.fsProvider.Stat(cfg.SourcePath)
	if err != nil || !info.IsDir() {
		c.logger.Error("Source directory not found: %s", cfg.SourcePath)
		return depmap.ConvertReport{}, fmt.Errorf("%s: %w", cfg.SourcePath, depmap.ErrSourceNotFound)
	}

	if err := os.MkdirAll(cfg.DestinationPath, 0o755); err != nil {
		return depmap.ConvertReport{}, fmt.Errorf("failed to create destination %s: %w", cfg.DestinationPath, err)
	}
	c.logger.Verbose("Destination Maven repository: %s", cfg.DestinationPath)

	var signatures *checksum.SignatureVerifier
	if cfg.KeyringPath != "" {
		keyring, err := checksum.LoadKeyring(c.fsProvider, cfg.KeyringPath)
		if err != nil {
			return depmap.ConvertReport{}, err
		}
		c.logger.Verbose("Loaded %d keys from %s", len(keyring), cfg.KeyringPath)
		signatures = checksum.NewSignatureVerifier(c.fsProvider, keyring)
	}

	dir, err := c.fsProvider.Open(cfg.SourcePath)
	if err != nil {
		return depmap.ConvertReport{}, fmt.Errorf("%s: %w", cfg.SourcePath, depmap.ErrSourceNotFound)
	}

	var report depmap.ConvertReport
	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			outcome := depmap.ConvertOutcome{Status: depmap.StatusFailed, Err: walkErr}
			if file != nil {
				outcome.SourceDir = file.Path()
			}
			c.logger.Error("Error processing %s: %v", outcome.SourceDir, walkErr)
			report.Outcomes = append(report.Outcomes, outcome)
			return nil
		}
		if !file.Info().IsDir() {
			return nil
		}

		entry, ok, err := c.inspect(file)
		if err != nil {
			c.logger.Error("Error processing %s: %v", file.Path(), err)
			report.Outcomes = append(report.Outcomes, depmap.ConvertOutcome{
				SourceDir: file.Path(),
				Status:    depmap.StatusFailed,
				Err:       err,
			})
			return nil
		}
		if !ok {
			return nil
		}

		report.Outcomes = append(report.Outcomes, c.convertEntry(ctx, entry, cfg, signatures))
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("failed to walk %s: %w", cfg.SourcePath, err)
	}

	return report, nil
}

// inspect lists a directory and reports whether it qualifies as a version directory.
func (c *Converter) inspect(dir filesystem.File) (depmap.SourceEntry, bool, error) {
	infos, err := c.fsProvider.ReadDir(dir.Path())
	if err != nil {
		return depmap.SourceEntry{}, false, err
	}

	entry := depmap.SourceEntry{Path: dir.Path(), RelPath: dir.RelativePath()}
	qualifies := false
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		name := info.Name()
		if IsSidecar(name) {
			entry.Sidecars = append(entry.Sidecars, name)
			continue
		}
		if IsPayload(name) {
			qualifies = true
		}
		entry.Files = append(entry.Files, name)
	}
	return entry, qualifies, nil
}

// convertEntry copies one version directory. A file that fails to verify or
// copy marks the outcome failed; the remaining files are still copied.
// signatures is nil unless a keyring was given.
func (c *Converter) convertEntry(ctx context.Context, entry depmap.SourceEntry, cfg depmap.ConvertConfig, signatures *checksum.SignatureVerifier) depmap.ConvertOutcome {
	outcome := depmap.ConvertOutcome{SourceDir: entry.Path}

	coord, err := ParseSourcePath(entry.RelPath)
	if err != nil {
		c.logger.Warn("Skipping %s: %v", entry.Path, err)
		outcome.Status = depmap.StatusSkipped
		outcome.Err = err
		return outcome
	}
	outcome.Coordinate = coord

	versionDir := filepath.Join(cfg.DestinationPath, coord.RepositoryDir())
	if err := os.MkdirAll(versionDir, 0o755); err != nil {
		c.logger.Error("Error processing %s: %v", entry.Path, err)
		outcome.Status = depmap.StatusFailed
		outcome.Err = err
		return outcome
	}

	c.logger.Info("Processing: %s", coord)

	var errs []error
	for _, name := range entry.Files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if cfg.VerifyChecksums {
			if err := c.verifier.Verify(entry.Path, name, entry.Sidecars); err != nil {
				c.logger.Error("Error processing %s: %v", entry.Path, err)
				errs = append(errs, err)
				continue
			}
		}
		if signatures != nil {
			if err := signatures.Verify(entry.Path, name, entry.Sidecars); err != nil {
				c.logger.Error("Error processing %s: %v", entry.Path, err)
				errs = append(errs, err)
				continue
			}
		}

		if err := c.copyFile(filepath.Join(entry.Path, name), filepath.Join(versionDir, name)); err != nil {
			c.logger.Error("Error processing %s: %v", entry.Path, err)
			errs = append(errs, err)
			continue
		}
		outcome.Copied = append(outcome.Copied, name)
		c.logger.Info("  Copied %s", name)
	}

	outcome.Status = depmap.StatusConverted
	if len(errs) > 0 {
		outcome.Status = depmap.StatusFailed
		outcome.Err = errors.Join(errs...)
	}
	return outcome
}

// copyFile streams src to dst, replacing dst, then carries over the permission
// bits and modification time of src.
func (c *Converter) copyFile(src, dst string) (err error) {
	info, err := c.fsProvider.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	in, err := c.fsProvider.OpenFile(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	//nolint:errcheck // read-only
	defer in.Close()

	// a read-only copy from an earlier run must not block the overwrite
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to replace %s: %w", dst, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, permOf(info))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Chmod(permOf(info)); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("failed to set times on %s: %w", dst, err)
	}
	return nil
}

func permOf(info fs.FileInfo) fs.FileMode {
	if perm := info.Mode().Perm(); perm != 0 {
		return perm
	}
	return 0o644
}
