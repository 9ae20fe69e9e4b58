package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sudhirshivaram/portfolio/internal/assets"
	"github.com/sudhirshivaram/portfolio/internal/config"
	"github.com/sudhirshivaram/portfolio/internal/content"
	"github.com/sudhirshivaram/portfolio/internal/logging"
	"github.com/sudhirshivaram/portfolio/internal/portfolio"
)

var (
	cfgFile   string
	appConfig config.Config
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Single-page personal portfolio",
	Long: `portfolio renders a one-page portfolio (hero, about, projects, skills,
certifications and contact) with every image embedded inline, and serves it
over HTTP. Run without a subcommand to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initialize() error {
	cfg, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	logger, err = logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	return nil
}

// site is what every command needs to produce the page.
type site struct {
	renderer *portfolio.Renderer
	content  portfolio.Content
}

// loadSite parses the embedded content and checks it composes, so broken
// content fails at startup rather than on the first request.
func loadSite(cfg config.Config) (site, error) {
	c, err := content.Load()
	if err != nil {
		return site{}, fmt.Errorf("load content: %w", err)
	}
	if cfg.PageTitle != "" {
		c.Title = cfg.PageTitle
	}
	if _, err := portfolio.Compose(c); err != nil {
		return site{}, fmt.Errorf("compose page: %w", err)
	}

	loader := assets.NewDirLoader(cfg.AssetsDir, logger.Named("assets"))
	return site{renderer: portfolio.NewRenderer(loader), content: c}, nil
}
