package main

import (
	"flag"
	"fmt"
	"os"

	"bbd/internal/di"
	"bbd/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	debug := flag.Bool("debug", false, "also log to stdout")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "bbd: %s\n", err)
		os.Exit(1)
	}
}
