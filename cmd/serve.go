package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sudhirshivaram/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	s, err := loadSite(appConfig)
	if err != nil {
		return err
	}

	gin.SetMode(appConfig.GinMode)
	r := server.New(s.renderer, s.content, logger.Named("http"))

	logger.Info("serving portfolio",
		zap.String("addr", appConfig.Addr()),
		zap.String("assets_dir", appConfig.AssetsDir),
	)
	return r.Run(appConfig.Addr())
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
