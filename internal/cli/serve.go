package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/agent-gallery/internal/gallery"
	"github.com/valter-silva-au/agent-gallery/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser gallery over HTTP",
	Long: `Start the gallery HTTP server: a JSON API for the filtered catalog and
the embedded single-page gallery client. With --watch (or server.watch in
.galleryrc), the catalog is reloaded when its source changes on disk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil || Config == nil {
			return fmt.Errorf("catalog not initialized")
		}

		cfg := *Config
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.ServerPort = port
		}
		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			cfg.Watch = true
		}

		log := logging.New(nil, cfg.LogLevel)
		srv := gallery.New(&cfg, log, Catalog,
			gallery.WithEventLog(EventLog),
			gallery.WithVersion(appVersion),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Gallery on http://%s:%d (ctrl-c to stop)\n", cfg.ServerBind, cfg.ServerPort)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "override the configured server port")
	serveCmd.Flags().BoolP("watch", "w", false, "reload the catalog when its source changes")
	rootCmd.AddCommand(serveCmd)
}
