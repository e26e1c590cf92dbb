package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/wahhaj007/portfolio/internal/page"
	"github.com/wahhaj007/portfolio/internal/server"
	"github.com/wahhaj007/portfolio/internal/site"
)

// --- serve ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page for local preview",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	watch, _ := cmd.Flags().GetBool("watch")
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	pg, err := loadPage()
	if err != nil {
		return err
	}

	srv := server.New(pg, server.Options{
		Addr:      cfg.Addr(),
		BasePath:  cfg.BasePath,
		AssetsDir: cfg.AssetsDir,
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })

	switch {
	case watch && cfg.ProfilePath == "":
		logger.Warn("--watch needs a profile file; serving the embedded profile without reload")
	case watch:
		r := server.NewReloader(cfg.ProfilePath, loadPage, srv.SetPage, logger)
		g.Go(func() error { return r.Run(ctx) })
	}

	return g.Wait()
}

// --- build ---

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the page and its assets into a static directory",
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.OutDir = out
	}

	pg, err := loadPage()
	if err != nil {
		return err
	}

	rep, err := site.Build(cmd.Context(), site.BuildOptions{
		OutDir:    cfg.OutDir,
		AssetsDir: cfg.AssetsDir,
		Page:      pg,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printSuccess(w, "Built %s", cfg.OutDir)
	printStatus(w, "Base", "%s", pg.View(page.DefaultTheme).Base)
	printStatus(w, "Files", "%d", len(rep.Files))
	printStatus(w, "Bytes", "%d", rep.Bytes)
	return nil
}

// --- check ---

var checkCmd = &cobra.Command{
	Use:   "check [index.html]",
	Short: "Verify that every header anchor has a matching section",
	Long: `Parses a rendered page and reports the cards found in each section.
Fails if a navigation anchor points at an id that does not exist.

Defaults to <out>/index.html from the last build.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := filepath.Join(cfg.OutDir, "index.html")
	if len(args) == 1 {
		path = args[0]
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()

	rep, err := site.Inspect(f)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, target := range rep.NavTargets {
		sec, ok := rep.Sections[target]
		if !ok {
			continue
		}
		chips, lines := 0, 0
		for _, c := range sec.Cards {
			chips += c.Chips
			lines += c.Lines
		}
		printStatus(w, target, "%d cards, %d chips, %d lines", len(sec.Cards), chips, lines)
	}

	if dangling := rep.Dangling(); len(dangling) > 0 {
		for _, d := range dangling {
			printError(w, "nav anchor #%s has no matching id", d)
		}
		logger.Debug("Check failed", zap.Strings("dangling", dangling))
		return fmt.Errorf("%d dangling anchor(s) in %s", len(dangling), path)
	}

	printSuccess(w, "%d anchors resolve in %s", len(rep.NavTargets), path)
	return nil
}

// --- profile ---

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the effective profile as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding profile: %w", err)
		}
		return enc.Close()
	},
}
