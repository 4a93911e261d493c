package commands

import (
	"time"

	"github.com/battlesnakeio/snake/api"
	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/realtime"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serveListen     = ""
	upstreamTimeout = 15 * time.Second
)

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", serveListen, "address to listen on, defaults to :$PORT")
	serveCmd.Flags().DurationVar(&upstreamTimeout, "upstream-timeout", upstreamTimeout, "timeout for a session request to the voice api")
	serveCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	serveCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

var serveCmd = &cobra.Command{
	Use:    "serve",
	Short:  "serves the browser assets and the voice session endpoint",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		cfg, err := config.LoadSession()
		if err != nil {
			log.WithError(err).Fatal("unable to load session config")
		}
		tuning := config.DefaultTuning()

		client := realtime.NewClient(cfg.APIKey, cfg.SessionsURL, upstreamTimeout)
		client.DefaultModel = cfg.Model
		client.Voice = cfg.Voice
		client.Instructions = cfg.Instructions

		listen := serveListen
		if listen == "" {
			listen = ":" + cfg.Port
		}

		srv := api.New(listen, client, api.Options{
			PublicDir:      cfg.PublicDir,
			SessionRate:    tuning.SessionRate(),
			SessionBurst:   tuning.SessionBurst,
			RequestTimeout: upstreamTimeout,
		})
		log.WithFields(log.Fields{
			"listen": listen,
			"public": cfg.PublicDir,
			"model":  cfg.Model,
		}).Info("snake session endpoint serving")
		if err := srv.WaitForExit(); err != nil {
			log.WithError(err).
				WithField("listen", listen).
				Fatal("session server failed")
		}
	},
}
