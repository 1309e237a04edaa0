package main

import (
	"flag"
	"fmt"
	"os"

	"beatsurvivor/internal/game"
)

func main() {
	term := flag.Bool("term", false, "run in the terminal instead of a window")
	cfgPath := flag.String("config", "beatsurvivor.yaml", "path to the settings file")
	flag.Parse()

	cfg, err := game.LoadSettings(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v (using defaults)\n", err)
	}

	if *term || cfg.Backend == game.BackendTerminal {
		game.RunTerminal(cfg)
		return
	}
	game.RunDesktop(cfg)
}
