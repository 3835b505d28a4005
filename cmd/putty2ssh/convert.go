package main

import (
	"fmt"
	"os"

	"github.com/putty-tools/putty2ssh/internal/regtext"
	"github.com/putty-tools/putty2ssh/internal/sessions"
	"github.com/putty-tools/putty2ssh/internal/sshcfg"
)

// runConvert drives the pipeline for one input file. Only file access can
// fail; malformed registry content degrades inside the parser instead.
func runConvert(regPath string) error {
	data, err := os.ReadFile(regPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", regPath, err)
	}
	printVerbose("Read %s (%d bytes)\n", regPath, len(data))

	tree := regtext.Parse(data)
	printVerbose("Parsed %d registry keys\n", tree.Len())

	selected := sessions.Filter(tree, sessions.Options{
		IncludeTemplate: includeDefaultSettings,
	})
	printVerbose("Selected %d SSH sessions\n", len(selected))

	config := sshcfg.Build(selected)

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(config), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outputPath, err)
		}
		printVerbose("Wrote config to %s\n", outputPath)
		return nil
	}

	fmt.Println(config)
	return nil
}
