package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"slights/internal/catalog"
	"slights/internal/config"
	"slights/internal/game"
	"slights/internal/ws"
)

const version = "0.1.0"

func newCmd(cfg *config.Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SLIGHTS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "slights",
		Short:         "Server-authoritative session engine for the Slights party card game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.Bind, "bind", "b", cfg.Bind, "address to bind to (env: SLIGHTS_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on (env: SLIGHTS_PORT)")
	fs.StringVar(&cfg.CardsFile, "cards", cfg.CardsFile, "path to a JSON card catalog replacing the embedded one (env: SLIGHTS_CARDS)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error (env: SLIGHTS_LOG_LEVEL)")
	fs.BoolVar(&cfg.ExportEnabled, "export", cfg.ExportEnabled, "append finished match summaries to a file (env: SLIGHTS_EXPORT)")
	fs.StringVar(&cfg.ExportFile, "export-file", cfg.ExportFile, "path for exported match summaries (env: SLIGHTS_EXPORT_FILE)")
	fs.IntVar(&cfg.ScoreLimit, "score-limit", cfg.ScoreLimit, "points needed to win a match (env: SLIGHTS_SCORE_LIMIT)")
	fs.IntVar(&cfg.HandSize, "hand-size", cfg.HandSize, "response cards per hand (env: SLIGHTS_HAND_SIZE)")
	fs.IntVar(&cfg.MinPlayers, "min-players", cfg.MinPlayers, "connected players required to start (env: SLIGHTS_MIN_PLAYERS)")
	fs.IntVar(&cfg.MaxPlayers, "max-players", cfg.MaxPlayers, "maximum roster size (env: SLIGHTS_MAX_PLAYERS)")
	fs.IntVar(&cfg.SubmissionSeconds, "submission-time", cfg.SubmissionSeconds, "submission phase length in seconds (env: SLIGHTS_SUBMISSION_TIME)")
	fs.IntVar(&cfg.JudgingSeconds, "judging-time", cfg.JudgingSeconds, "judging phase length in seconds (env: SLIGHTS_JUDGING_TIME)")
	fs.IntVar(&cfg.ResolutionSeconds, "resolution-time", cfg.ResolutionSeconds, "pause between rounds in seconds, 0 for none (env: SLIGHTS_RESOLUTION_TIME)")
	fs.BoolVar(&cfg.AnonymousSubmissions, "anonymous", cfg.AnonymousSubmissions, "hide submission authors during judging (env: SLIGHTS_ANONYMOUS)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("slights v{{.Version}}\n")

	return cmd
}

func serve(cfg *config.Config) error {
	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)
	logger := zerologlog.Logger

	cat := catalog.Default()
	if cfg.CardsFile != "" {
		loaded, err := catalog.LoadFile(cfg.CardsFile)
		if err != nil {
			return err
		}
		cat = loaded
	}
	logger.Info().Int("prompts", cat.PromptCount()).Int("responses", cat.ResponseCount()).Msg("catalog loaded")

	rm := game.NewRoomManager(cat, logger)
	defer rm.Close()

	if cfg.ExportEnabled {
		exportFile := cfg.ExportFile
		rm.SetSessionHook(func(s *game.Session) {
			s.SetOnFinished(func(sum *game.Summary) {
				if err := game.WriteSummary(sum, exportFile); err != nil {
					logger.Error().Err(err).Str("code", sum.Code).Msg("failed to export match summary")
				} else {
					logger.Info().Str("code", sum.Code).Str("file", exportFile).Msg("exported match summary")
				}
			})
		})
	}

	// Gin setup with custom logger (skip /socket.io noise)
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/socket.io") {
			return
		}
		logger.Info().Str("path", path).Int("status", c.Writer.Status()).Dur("dur", time.Since(start)).Msg("http")
	})

	// Healthcheck
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})

	defaults := sessionDefaults(cfg)
	sock := ws.New(rm, defaults)
	io := sock.Mount(r)
	defer io.Close()

	// Minimal REST surface for lobby tooling
	r.GET("/api/sessions/:code", func(c *gin.Context) {
		sess, err := rm.Get(c.Param("code"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"sessionCode": sess.Code,
			"status":      sess.Status(),
			"roster":      sess.Roster(),
		})
	})
	type createReq struct {
		Config game.SessionConfig `json:"config"`
	}
	r.POST("/api/sessions", func(c *gin.Context) {
		var req createReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_config"})
			return
		}
		sess := rm.CreateSession(req.Config.Merge(defaults))
		c.JSON(http.StatusOK, gin.H{"sessionCode": sess.Code})
	})

	logger.Info().Str("addr", cfg.Addr()).Msg("listening")
	return r.Run(cfg.Addr())
}

// sessionDefaults maps the server configuration to the per-session settings
// every transport applies to unset create-payload fields.
func sessionDefaults(cfg *config.Config) game.SessionConfig {
	return game.SessionConfig{
		ScoreLimit:           cfg.ScoreLimit,
		HandSize:             cfg.HandSize,
		MinPlayers:           cfg.MinPlayers,
		MaxPlayers:           cfg.MaxPlayers,
		SubmissionSeconds:    cfg.SubmissionSeconds,
		JudgingSeconds:       cfg.JudgingSeconds,
		ResolutionSeconds:    cfg.ResolutionSeconds,
		PingGraceSeconds:     cfg.PingGraceSeconds,
		PingTimeoutSeconds:   cfg.PingTimeoutSeconds,
		AnonymousSubmissions: &cfg.AnonymousSubmissions,
	}
}

func main() {
	cfg := config.Default()
	cobra.CheckErr(newCmd(&cfg).Execute())
}
