// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Command lite-client-demo drives the light client facade end to end: load
// a trusted checkpoint, apply a sequence of candidate block views against
// it, and report the resulting head.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/certen/near-lite-client/checkpoint"
	"github.com/certen/near-lite-client/client"
	"github.com/certen/near-lite-client/config"
	"github.com/certen/near-lite-client/logging"
	"github.com/certen/near-lite-client/primitives"
)

func main() {
	var (
		checkpointPath = flag.String("checkpoint", "", "path to a trusted checkpoint JSON file")
		configPath     = flag.String("config", "", "path to an optional config JSON file")
		help           = flag.Bool("help", false, "show help")
	)
	flag.Parse()

	if *help || *checkpointPath == "" {
		fmt.Println("lite-client-demo")
		fmt.Println("\nUsage:")
		fmt.Println("  lite-client-demo -checkpoint checkpoint.json block1.json block2.json ...")
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.NewLogger(&logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	log = log.WithComponent("lite-client-demo")

	cp, err := checkpoint.LoadFile(*checkpointPath)
	if err != nil {
		log.Error("failed to load checkpoint", logging.Field{Key: "path", Value: *checkpointPath})
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := client.DefaultOptions()
	if cfg.Digest.Implementation == "fast-sha256" {
		opts.Digest = primitives.FastSHA256Digest{}
	}
	opts.Validation.StrictLengths = cfg.Validation.StrictLengths
	opts.CrossCheckBlockHash = cfg.Validation.CrossCheckBlockHash

	lc := client.NewLightClient(cp, opts)
	log.Info("loaded checkpoint",
		logging.Field{Key: "height", Value: lc.Head().InnerLite.Height},
		logging.Field{Key: "validators", Value: len(lc.CurrentValidators())},
	)

	for _, path := range flag.Args() {
		view, err := checkpoint.LoadBlockViewFile(path)
		if err != nil {
			log.Error("failed to load block view", logging.Field{Key: "path", Value: path})
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := lc.ValidateAndUpdateHead(view); err != nil {
			log.WithError(err).Error("candidate rejected", logging.Field{Key: "path", Value: path})
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		log.Info("head advanced",
			logging.Field{Key: "path", Value: path},
			logging.Field{Key: "height", Value: lc.Head().InnerLite.Height},
		)
	}

	fmt.Printf("final head height: %d\n", lc.Head().InnerLite.Height)
}
