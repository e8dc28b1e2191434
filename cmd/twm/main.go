// Package main is the twm command: it merges utility class lists given
// as arguments or on stdin, one list per line.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/meldui/twm"
)

// fileOptions is the YAML shape of --config. Unknown keys are ignored.
type fileOptions struct {
	Prefix    string         `yaml:"prefix"`
	CacheSize *int           `yaml:"cache_size"`
	Override  partialOptions `yaml:"override"`
	Extend    partialOptions `yaml:"extend"`
}

type partialOptions struct {
	ConflictingClassGroups         map[string][]string `yaml:"conflicting_class_groups"`
	ConflictingClassGroupModifiers map[string][]string `yaml:"conflicting_class_group_modifiers"`
	OrderSensitiveModifiers        []string            `yaml:"order_sensitive_modifiers"`
}

func (p partialOptions) toPartialConfig() twm.PartialConfig {
	return twm.PartialConfig{
		ConflictingClassGroups:         p.ConflictingClassGroups,
		ConflictingClassGroupModifiers: p.ConflictingClassGroupModifiers,
		OrderSensitiveModifiers:        p.OrderSensitiveModifiers,
	}
}

func main() {
	var (
		prefix     string
		cacheSize  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "twm [classes...]",
		Short: "Merge utility class lists without style conflicts",
		Long: `twm merges TailwindCSS-style utility class lists: for classes that
target the same visual property under the same variants, only the last
one survives. Class lists are read from the arguments, or from stdin
one list per line.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := twm.ExtendOptions{Prefix: prefix}
			if cmd.Flags().Changed("cache-size") {
				opts.CacheSize = &cacheSize
			}
			if configPath != "" {
				fileOpts, err := loadOptions(configPath)
				if err != nil {
					return err
				}
				if opts.Prefix == "" {
					opts.Prefix = fileOpts.Prefix
				}
				if opts.CacheSize == nil {
					opts.CacheSize = fileOpts.CacheSize
				}
				opts.Override = fileOpts.Override.toPartialConfig()
				opts.Extend = fileOpts.Extend.toPartialConfig()
			}
			merge := twm.Extend(opts)

			if len(args) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), merge(strings.Join(args, " ")))
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				fmt.Fprintln(cmd.OutOrStdout(), merge(scanner.Text()))
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading stdin: %w", err)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&prefix, "prefix", "", "only merge classes carrying this prefix")
	rootCmd.Flags().IntVar(&cacheSize, "cache-size", 0, "merge cache bound (0 disables caching)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML options file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadOptions(path string) (*fileOptions, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	var opts fileOptions
	if err := yaml.Unmarshal(content, &opts); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	return &opts, nil
}
