// Package handlers provides command handler functions for zuupctl domain
// registry operations.
//
// This file contains the handlers for browsing the taxonomy that a running
// daemon serves: listing registered domains, inspecting a single domain's
// categories and scoring dimensions, and dumping its seed prompt library.
// Registry routes are unauthenticated on the daemon so these commands work
// without an API key.
package handlers

import (
	"github.com/spf13/cobra"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/client"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/config"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/display"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/utils"
	"github.com/zuup-ai/zuup-collect/internal/logging"
)

// HandleDomainList handles the domain ls subcommand for listing all domains
// registered with the daemon's taxonomy.
func HandleDomainList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching domain registry from API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	list, err := apiClient.GetDomains()
	if err != nil {
		return err
	}

	display.DisplayDomains(list)
	logging.Success("Successfully retrieved %d domain(s)", list.Count)
	return nil
}

// HandleDomainInfo handles the domain info subcommand for inspecting one
// domain's definition including categories, scoring dimensions, and
// collection targets.
func HandleDomainInfo(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	domainID := args[0]
	logging.Info("Fetching domain %s from API server: %s", domainID, config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	domain, err := apiClient.GetDomain(domainID)
	if err != nil {
		return err
	}

	display.DisplayDomainInfo(domain)
	logging.Success("Successfully retrieved domain %s", domain.ID)
	return nil
}

// HandleDomainPrompts handles the domain prompts subcommand for listing a
// domain's seed prompt library, optionally restricted to one topic.
func HandleDomainPrompts(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	domainID := args[0]
	logging.Info("Fetching seed prompts for domain %s from API server: %s",
		domainID, config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	resp, err := apiClient.GetDomainPrompts(domainID, config.Domain.Topic)
	if err != nil {
		return err
	}

	display.DisplayPrompts(resp)
	logging.Success("Successfully retrieved %d prompt(s) for domain %s",
		len(resp.Prompts), domainID)
	return nil
}
