// Command airnet is an interactive flight route explorer: it seeds a
// flight network and answers fastest, cheapest and connection-aware
// path queries from a terminal menu.
//
// Usage:
//
//	airnet [-config airnet.toml] [-no-seed]
package main

import (
	"flag"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/airnet/internal/config"
	"github.com/katalvlaran/airnet/internal/shell"
	"github.com/katalvlaran/airnet/network"
	"github.com/katalvlaran/airnet/seed"
)

func main() {
	configPath := flag.String("config", "", "Path to TOML configuration file")
	noSeed := flag.Bool("no-seed", false, "Start with an empty network")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err = run(cfg, !*noSeed, os.Stdin, os.Stdout); err != nil {
		log.Errorf("airnet terminated: %v", err)
		os.Exit(1)
	}
}

// run owns the session: logger, network, seed and shell. The log writer
// is closed on return so rotated files are flushed.
func run(cfg *config.Config, seeded bool, in io.Reader, out io.Writer) error {
	logOut := config.SetupLogger(cfg)
	if c, ok := logOut.(io.Closer); ok && logOut != os.Stderr {
		defer func() {
			log.SetOutput(os.Stderr)
			_ = c.Close()
		}()
	}

	n := network.New(network.WithCurrency(cfg.Currency))
	if seeded {
		if err := seedNetwork(n, cfg); err != nil {
			return err
		}
	}

	sh := shell.New(n, in, out,
		shell.WithFormat(cfg.Output),
		shell.WithMinConnection(cfg.MinConnection),
	)
	return sh.Run()
}

// seedNetwork loads the configured topology file, or the demo when enabled.
func seedNetwork(n *network.Network, cfg *config.Config) error {
	switch {
	case cfg.SeedFile != "":
		topo, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return err
		}
		log.Infof("seeding from %s", cfg.SeedFile)
		return seed.Apply(n, topo)
	case cfg.SeedDemo:
		return seed.Apply(n, seed.Default())
	default:
		return nil
	}
}
