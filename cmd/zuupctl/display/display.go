// Package display provides output formatting and display functions for zuupctl.
//
// This package handles all user-facing output formatting including table and
// JSON output for daemon health, pipeline statistics, domain registry entries,
// and seed prompts. It provides consistent formatting across all zuupctl
// commands with support for verbose mode and different output formats.
//
// The display functions handle:
// - Daemon health and pipeline statistics formatting
// - Domain registry listings with category and dimension details
// - Seed prompt and generated response pair presentation
// - Consistent table formatting using text/tabwriter
// - JSON output with proper indentation and error handling
//
// All display functions respect global configuration for output format and
// verbosity while maintaining clean separation from business logic.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/client"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/config"
	"github.com/zuup-ai/zuup-collect/internal/logging"
)

// printJSON encodes v to stdout with indentation. Shared by every display
// function's JSON path so formatting stays uniform.
func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Println("Error encoding JSON output")
	}
}

// DisplayHealth displays daemon health information in tabular or JSON format.
// Gives operators a one-line liveness answer plus the pipeline context needed
// to judge whether the daemon is actually doing work.
func DisplayHealth(health *client.HealthStatus) {
	if config.Global.Output == "json" {
		printJSON(health)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Status:\t%s\n", health.Status)
	fmt.Fprintf(w, "Version:\t%s\n", health.Version)
	fmt.Fprintf(w, "Uptime:\t%s\n", health.Uptime)
	fmt.Fprintf(w, "Domain:\t%s\n", health.Domain)
	fmt.Fprintf(w, "Queue Depth:\t%d\n", health.QueueDepth)
}

// DisplayStats displays pipeline counter statistics in tabular or JSON
// format. Counts are grouped by outcome so operators can see at a glance
// where comparisons are going: forwarded, filtered, or stuck in the queue.
func DisplayStats(info *client.StatsInfo) {
	if config.Global.Output == "json" {
		printJSON(info)
		return
	}

	stats := info.Stats

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Domain:\t%s\n", info.Domain)
	fmt.Fprintf(w, "Collected:\t%s\n", humanize.Comma(stats.Collected))
	fmt.Fprintf(w, "Submitted:\t%s\n", humanize.Comma(stats.Submitted))
	fmt.Fprintf(w, "Rejected (quality):\t%s\n", humanize.Comma(stats.RejectedQuality))
	fmt.Fprintf(w, "Rejected (duplicate):\t%s\n", humanize.Comma(stats.RejectedDuplicate))
	fmt.Fprintf(w, "Failed:\t%s\n", humanize.Comma(stats.Failed))
	fmt.Fprintf(w, "Queue Depth:\t%d\n", stats.QueueDepth)
	fmt.Fprintf(w, "Acceptance Rate:\t%.1f%%\n", stats.AcceptanceRate*100)
}

// DisplaySubmitResult displays the pipeline's verdict on a submitted
// comparison. Rejections show the counter deltas so the operator can tell a
// quality rejection from a duplicate without re-reading daemon logs.
func DisplaySubmitResult(result *client.SubmitResult) {
	if config.Global.Output == "json" {
		printJSON(result)
		return
	}

	if result.Accepted {
		fmt.Println("Comparison accepted and queued for submission")
	} else {
		fmt.Println("Comparison rejected by the pipeline")
	}

	if config.Global.Verbose {
		fmt.Println()
		DisplayStats(&client.StatsInfo{Stats: result.Stats})
	}
}

// DisplayFlushResult displays the outcome of a manual queue flush.
func DisplayFlushResult(result *client.FlushResult) {
	if config.Global.Output == "json" {
		printJSON(result)
		return
	}

	fmt.Printf("Flushed %d record(s) to the preference store\n", result.Flushed)

	if config.Global.Verbose {
		fmt.Println()
		DisplayStats(&client.StatsInfo{Stats: result.Stats})
	}
}

// DisplayDomains displays the domain registry in tabular or JSON format.
// Handles empty result sets gracefully for daemons running with a custom
// registry.
func DisplayDomains(list *client.DomainListResponse) {
	if len(list.Domains) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No domains registered")
		}
		return
	}

	if config.Global.Output == "json" {
		printJSON(list.Domains)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if config.Global.Verbose {
		fmt.Fprintln(w, "ID\tNAME\tPLATFORM\tCATEGORIES\tMIN SAMPLES")
	} else {
		fmt.Fprintln(w, "ID\tNAME\tPLATFORM")
	}

	for _, domain := range list.Domains {
		if config.Global.Verbose {
			categories := make([]string, 0, len(domain.Categories))
			for _, cat := range domain.Categories {
				categories = append(categories, cat.ID)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
				domain.ID, domain.Name, domain.Platform,
				strings.Join(categories, ","), domain.MinSamples)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", domain.ID, domain.Name, domain.Platform)
		}
	}
}

// DisplayDomainInfo displays one domain definition with its categories and
// scoring dimensions. Verbose mode adds example tasks per category so
// annotators can see what kind of prompts each category collects.
func DisplayDomainInfo(domain *client.DomainDetail) {
	if config.Global.Output == "json" {
		printJSON(domain)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "ID:\t%s\n", domain.ID)
	fmt.Fprintf(w, "Name:\t%s\n", domain.Name)
	fmt.Fprintf(w, "Platform:\t%s\n", domain.Platform)
	fmt.Fprintf(w, "Description:\t%s\n", domain.Description)
	fmt.Fprintf(w, "Min Samples:\t%d\n", domain.MinSamples)
	if domain.AnnotatorRequirements != "" {
		fmt.Fprintf(w, "Annotators:\t%s\n", domain.AnnotatorRequirements)
	}
	w.Flush()

	fmt.Println("\nCategories:")
	cw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(cw, "  ID\tNAME\tDESCRIPTION")
	for _, cat := range domain.Categories {
		fmt.Fprintf(cw, "  %s\t%s\t%s\n", cat.ID, cat.Name, cat.Description)
	}
	cw.Flush()

	if config.Global.Verbose {
		for _, cat := range domain.Categories {
			if len(cat.ExampleTasks) == 0 {
				continue
			}
			fmt.Printf("\nExample tasks (%s):\n", cat.ID)
			for _, task := range cat.ExampleTasks {
				fmt.Printf("  - %s\n", task)
			}
		}
	}

	fmt.Println("\nScoring Dimensions:")
	dw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(dw, "  NAME\tWEIGHT\tDESCRIPTION")
	for _, dim := range domain.Dimensions {
		fmt.Fprintf(dw, "  %s\t%d\t%s\n", dim.Name, dim.Weight, dim.Description)
	}
	dw.Flush()
}

// DisplayPrompts displays a domain's seed prompt library grouped by topic.
func DisplayPrompts(resp *client.PromptsResponse) {
	if config.Global.Output == "json" {
		printJSON(resp)
		return
	}

	if len(resp.Prompts) == 0 {
		fmt.Printf("No seed prompts found for domain %s\n", resp.Domain)
		return
	}

	fmt.Printf("Domain: %s\n", resp.Domain)
	fmt.Printf("Topics: %s\n\n", strings.Join(resp.Topics, ", "))

	for _, prompt := range resp.Prompts {
		fmt.Printf("[%s] %s\n", prompt.Category, prompt.Prompt)
	}
	fmt.Printf("\n%d prompt(s)\n", len(resp.Prompts))
}

// DisplaySeedPrompt displays one randomly selected seed prompt.
func DisplaySeedPrompt(domain, topic, prompt string) {
	if config.Global.Output == "json" {
		printJSON(map[string]string{
			"domain": domain,
			"topic":  topic,
			"prompt": prompt,
		})
		return
	}

	fmt.Printf("Domain: %s\n", domain)
	fmt.Printf("Topic:  %s\n\n", topic)
	fmt.Println(prompt)
}

// DisplayPair displays a generated response pair for a seed prompt. Marks
// placeholder output clearly so canned text never gets mistaken for a real
// model comparison.
func DisplayPair(pair *client.PairResult) {
	if config.Global.Output == "json" {
		printJSON(pair)
		return
	}

	model := pair.Model
	if pair.Placeholder {
		model = model + " (placeholder)"
	}

	fmt.Printf("\nModel: %s\n", model)
	fmt.Printf("\n--- Response A (%.2fs) ---\n%s\n", pair.ResponseTimeA, pair.ResponseA)
	fmt.Printf("\n--- Response B (%.2fs) ---\n%s\n", pair.ResponseTimeB, pair.ResponseB)
}

// DisplayExportSummary reports a completed export: record count, format, and
// destination. The data itself goes to the destination, not the terminal.
func DisplayExportSummary(count int, format, destination string) {
	if config.Global.Output == "json" {
		printJSON(map[string]any{
			"count":       count,
			"format":      format,
			"destination": destination,
		})
		return
	}

	fmt.Printf("Exported %s record(s) in %s format to %s\n",
		humanize.Comma(int64(count)), format, destination)
}
