// Command reel spins a name reel once in the terminal.
//
//	reel Alice Bob Carol
//	reel -profile standup -keep
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xtding233/name-reel/internal/config"
	"github.com/xtding233/name-reel/internal/picker"
	"github.com/xtding233/name-reel/internal/reel"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file")
	}

	configDir := flag.String("config", os.Getenv("NAMEREEL_CONFIG_DIR"), "config base directory")
	profile := flag.String("profile", os.Getenv("NAMEREEL_PROFILE"), "config profile")
	model := flag.String("timing", "", "timing model override: phased or linear")
	keep := flag.Bool("keep", false, "keep the winner in the pool")
	simulate := flag.Int("simulate", 0, "run a fairness check with this many shuffles instead of spinning")
	verbose := flag.Bool("v", false, "log spin diagnostics")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	raw := config.RawConfig{}
	if *configDir != "" {
		var err error
		raw, err = config.NewLoader(*configDir).LoadMerged(*profile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if args := flag.Args(); len(args) > 0 {
		raw.Names = args
	}

	o := config.Overrides{}
	if *model != "" {
		o.Model = model
	}
	if *keep {
		remove := false
		o.RemoveWinner = &remove
	}
	settings, err := config.Resolve(raw, o)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	if *simulate > 0 {
		f, err := picker.RunFairness(settings.Names, *simulate, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("fairness run failed")
		}
		for i, name := range settings.Names {
			fmt.Printf("%-20s %d\n", name, f.Wins[i])
		}
		fmt.Printf("chi-square %.3f over %d shuffles (df=%d)\n", f.ChiSquare, f.Trials, len(settings.Names)-1)
		return
	}

	term := reel.NewTerminal(os.Stdout, nil, 0)
	board := reel.NewBoard()
	board.Add(settings.Selector, term)

	p, err := picker.New(board, picker.Options{
		ReelSelector: settings.Selector,
		RemoveWinner: &settings.RemoveWinner,
		Timing:       settings.Timing,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build picker")
	}
	p.SetPool(settings.Names)

	if err := p.TrySpin(); err != nil {
		fmt.Fprintln(os.Stderr, "reel:", err)
		os.Exit(1)
	}
	if p.RemoveWinner() {
		fmt.Printf("remaining: %s\n", strings.Join(p.Pool(), ", "))
	}
}
