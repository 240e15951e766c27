package cmd

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coregx/esm/registry"
)

// stdlibMatcher implements registry.RegexMatcher against the standard
// library's RE2 engine, compiling each pattern once and reusing it for
// every text passed to Query.
type stdlibMatcher struct {
	compiled map[string]*regexp.Regexp
}

func newStdlibMatcher() *stdlibMatcher {
	return &stdlibMatcher{compiled: make(map[string]*regexp.Regexp)}
}

func (m *stdlibMatcher) MatchString(pattern, text string) (bool, error) {
	re, ok := m.compiled[pattern]
	if !ok {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			return false, err
		}
		m.compiled[pattern] = re
	}
	return re.MatchString(text), nil
}

// NewScanCommand builds the "scan" subcommand: load a patterns file,
// enter every pattern into a confirming registry, and report which
// payloads match each text argument.
func NewScanCommand() *cobra.Command {
	var patternsPath string

	cmd := &cobra.Command{
		Use:   "scan [flags] TEXT...",
		Short: "Match registered patterns against one or more text arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if patternsPath == "" {
				return ExitErrorf(ExUsage, "--patterns is required")
			}

			reg, err := loadRegistry(patternsPath)
			if err != nil {
				return err
			}

			for _, text := range args {
				results := reg.Query(text)
				logrus.WithField("text", text).WithField("matches", len(results)).Debug("scan complete")
				for _, payload := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", text, payload)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&patternsPath, "patterns", "", "path to a TSV file of regex<TAB>label lines")
	return cmd
}

// loadRegistry reads regex<TAB>label lines from path and enters each into a
// new confirming registry backed by the standard library's regexp engine.
func loadRegistry(path string) (*registry.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ExitErrorf(ExNoInput, "open patterns file: %v", err)
	}
	defer f.Close()

	reg := registry.NewConfirming(newStdlibMatcher())

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, ExitErrorf(ExDataErr, "%s:%d: expected regex<TAB>label", path, lineNo)
		}

		if _, err := reg.Enter(parts[0], parts[1]); err != nil {
			logrus.WithError(err).WithField("line", lineNo).Warn("skipping pattern")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ExitErrorf(ExDataErr, "read patterns file: %v", err)
	}

	return reg, nil
}
