// Package site writes the rendered portfolio to disk and inspects rendered
// pages.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wahhaj007/portfolio/internal/page"
)

// BuildOptions describe one static build.
type BuildOptions struct {
	OutDir    string
	AssetsDir string // copied verbatim into OutDir; optional
	Page      *page.Page
	Logger    *zap.Logger
}

// BuildReport lists what a build wrote.
type BuildReport struct {
	Files []string // paths relative to OutDir
	Bytes int64
}

// Build renders the page with the default theme and writes it, the
// embedded static files and the assets directory into OutDir.
func Build(ctx context.Context, opts BuildOptions) (BuildReport, error) {
	if opts.Page == nil {
		return BuildReport{}, errors.New("build: no page")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return BuildReport{}, fmt.Errorf("creating output directory: %w", err)
	}

	var rep BuildReport

	var buf bytes.Buffer
	if err := opts.Page.Render(&buf, page.DefaultTheme); err != nil {
		return rep, fmt.Errorf("rendering page: %w", err)
	}
	if err := rep.write(opts.OutDir, "index.html", &buf); err != nil {
		return rep, err
	}

	if err := rep.copyTree(ctx, page.StaticFS(), opts.OutDir, "static"); err != nil {
		return rep, fmt.Errorf("copying static files: %w", err)
	}

	if opts.AssetsDir != "" {
		info, err := os.Stat(opts.AssetsDir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn("Assets directory not found, skipping", zap.String("dir", opts.AssetsDir))
		case err != nil:
			return rep, fmt.Errorf("reading assets directory: %w", err)
		case !info.IsDir():
			return rep, fmt.Errorf("assets path %s is not a directory", opts.AssetsDir)
		default:
			if err := rep.copyTree(ctx, os.DirFS(opts.AssetsDir), opts.OutDir, ""); err != nil {
				return rep, fmt.Errorf("copying assets: %w", err)
			}
		}
	}

	logger.Info("Site built",
		zap.String("out", opts.OutDir),
		zap.Int("files", len(rep.Files)),
		zap.Int64("bytes", rep.Bytes))
	return rep, nil
}

// copyTree copies every regular file of src into outDir/prefix.
func (rep *BuildReport) copyTree(ctx context.Context, src fs.FS, outDir, prefix string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := src.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		return rep.write(outDir, filepath.Join(prefix, filepath.FromSlash(path)), f)
	})
}

func (rep *BuildReport) write(outDir, rel string, r io.Reader) error {
	dst := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", rel, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}

	rep.Files = append(rep.Files, filepath.ToSlash(rel))
	rep.Bytes += n
	return nil
}
