// Package handlers provides command handler functions for zuupctl seed
// prompt operations.
//
// This file contains the seed command handler: pick a random curated prompt
// for a domain and, when requested, have the daemon generate a candidate
// response pair for it. The combination gives annotators a ready-made
// comparison to judge without wiring up a producer application.
package handlers

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/client"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/config"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/display"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/utils"
	"github.com/zuup-ai/zuup-collect/internal/logging"
	"github.com/zuup-ai/zuup-collect/internal/prompts"
)

// HandleSeed handles the seed subcommand. Selects a random seed prompt from
// the local prompt library for the given domain (or the daemon's configured
// domain when omitted) and optionally asks the daemon to generate a response
// pair for it via POST /pairs.
//
// Prompt selection happens client-side so the command works for browsing
// even when no daemon is running; only --pair requires a reachable daemon.
func HandleSeed(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	domainID := ""
	if len(args) > 0 {
		domainID = args[0]
	}

	// No explicit domain: ask the daemon which domain it collects for
	if domainID == "" {
		apiClient := client.CreateAPIClient()
		health, err := apiClient.GetHealth()
		if err != nil {
			logging.Error("No domain given and daemon unreachable: %v", err)
			return err
		}
		domainID = health.Domain
		logging.Info("Using daemon's configured domain: %s", domainID)
	}

	seed, err := prompts.Random(domainID, config.Seed.Topic)
	if err != nil {
		logging.Error("Failed to select seed prompt: %v", err)
		return err
	}

	// Optionally derive a harder variant before presenting or pairing
	if config.Seed.Evolve != "" {
		if !prompts.ValidStrategy(config.Seed.Evolve) {
			logging.Error("Unknown evolution strategy '%s' - valid strategies are: complexity, specificity, constraint, multi_step", config.Seed.Evolve)
			return fmt.Errorf("unknown evolution strategy '%s'", config.Seed.Evolve)
		}
		seed.Prompt = prompts.Evolve(seed.Prompt, prompts.Evolution(config.Seed.Evolve))
	}

	display.DisplaySeedPrompt(seed.Domain, seed.Category, seed.Prompt)

	if !config.Seed.Pair {
		logging.Success("Selected seed prompt for domain %s", seed.Domain)
		return nil
	}

	logging.Info("Requesting response pair from API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	pair, err := apiClient.GeneratePair(seed.Prompt, seed.Domain)
	if err != nil {
		return err
	}

	display.DisplayPair(pair)
	logging.Success("Generated response pair with model %s", pair.Model)
	return nil
}
