package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wahhaj007/portfolio/internal/config"
	"github.com/wahhaj007/portfolio/internal/page"
	"github.com/wahhaj007/portfolio/internal/profile"
)

var (
	// Global flags
	verbose     bool
	profilePath string
	basePath    string
	assetsDir   string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Render, preview and build a single-page portfolio",
	Long: `portfolio renders a resume page from a YAML profile.

Run without arguments to start the preview server.

Examples:
  portfolio serve --watch --profile ./me.yaml
  portfolio build --base /portfolio/ --out dist
  portfolio check dist/index.html`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "profile YAML file (default: embedded profile, or $PROFILE_PATH)")
	rootCmd.PersistentFlags().StringVar(&basePath, "base", "", "deployment base path, e.g. /repo/ (default $BASE_PATH or /)")
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets", "", "directory of files served next to the page (default $ASSETS_DIR or public)")

	serveCmd.Flags().Bool("watch", false, "reload the page when the profile file changes")
	serveCmd.Flags().String("port", "", "listen port (default $PORT or 8080)")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	buildCmd.Flags().String("out", "", "output directory (default $OUT_DIR or dist)")

	rootCmd.AddCommand(serveCmd, buildCmd, checkCmd, profileCmd)
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if profilePath != "" {
		cfg.ProfilePath = profilePath
	}
	if basePath != "" {
		cfg.BasePath = basePath
	}
	if assetsDir != "" {
		cfg.AssetsDir = assetsDir
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("Configuration loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("base", cfg.BasePath),
		zap.String("profile", cfg.ProfilePath))
	return nil
}

// loadProfile decodes the configured profile file, or the embedded one.
func loadProfile() (profile.Profile, error) {
	if cfg.ProfilePath == "" {
		return profile.Default()
	}
	return profile.Load(cfg.ProfilePath)
}

func loadPage() (*page.Page, error) {
	p, err := loadProfile()
	if err != nil {
		return nil, err
	}
	return page.New(p, page.Options{BasePath: cfg.BasePath})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
