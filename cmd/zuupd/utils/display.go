// Package utils contains utility functions for the collection daemon.
package utils

import (
	"fmt"
)

// DisplayLogo prints the Zuup ASCII logo with version information
func DisplayLogo(version string) {
	fmt.Println()
	fmt.Println(` ░░░░░░░░░░░░░░░░░░░░
 ░▀▀█░█░█░█░█░█▀█░░░
 ░▄▀░░█░█░█░█░█▀▀░░░
 ░▀▀▀░▀▀▀░▀▀▀░▀░░░░░
 ░░░░░░░░░░░░░░░░░░░░`)
	fmt.Printf("\n Zuup Collect v%s - Preference Collection Daemon\n", version)
	fmt.Println(" Domain-specific RLHF preference data pipeline")
	fmt.Println()
}
