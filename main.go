package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pexeso/internal/assets"
	"github.com/robalobadob/pexeso/internal/config"
	"github.com/robalobadob/pexeso/internal/session"
	"github.com/robalobadob/pexeso/internal/store"
	"github.com/robalobadob/pexeso/internal/theme"
	"github.com/robalobadob/pexeso/internal/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// The font is the one asset the game cannot run without.
	fonts, err := assets.LoadFonts(cfg.FontPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load font")
	}
	defer fonts.Close()

	themes, err := theme.Load(cfg.ThemesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load themes")
	}

	log.Info().
		Str("font", fonts.Source).
		Int("themes", len(themes)).
		Bool("fixedDeal", cfg.FixedDeal()).
		Msg("starting pexeso")

	s := session.New(themes, store.NewMemoryStore(), cfg.SeedSource())
	if err := ui.Run(ui.New(s, fonts), cfg.WindowScale); err != nil {
		log.Error().Err(err).Msg("game loop exited")
		fonts.Close()
		os.Exit(1)
	}
	log.Info().Msg("window closed")
}
