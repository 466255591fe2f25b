//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"fiscal-sim/internal/app"
	"fiscal-sim/internal/i18n"
	"fiscal-sim/internal/ui"
)

func main() {
	log.SetPrefix("[FISCAL] ")

	cfg, err := app.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	bundle, err := i18n.Load()
	if err != nil {
		log.Fatalf("load messages: %v", err)
	}
	fonts := ui.DefaultFonts()
	if cfg.Font != "" {
		if fonts, err = ui.LoadFonts(cfg.Font); err != nil {
			log.Fatalf("load font: %v", err)
		}
	}

	game := app.New(cfg, bundle, fonts)

	ebiten.SetWindowTitle(bundle.Printer(cfg.Locale).Sprintf("window.title"))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(ui.ScreenWidth*cfg.Scale, ui.ScreenHeight*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
