package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/promptvary/internal/llm"
	"github.com/abhisek/promptvary/internal/store"
	"github.com/abhisek/promptvary/internal/variantgen"
	"github.com/abhisek/promptvary/internal/variants"
)

var generateCmd = &cobra.Command{
	Use:   "generate <base prompt>",
	Short: "Generate variants of a base prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		basePrompt := args[0]

		cfg := variantgen.DefaultConfig()

		if path, _ := cmd.Flags().GetString("config"); path != "" {
			var err error
			cfg, err = cfg.LoadFile(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
		}

		// Flags beat the config file.
		if cmd.Flags().Changed("difficulty") {
			names, _ := cmd.Flags().GetStringSlice("difficulty")
			cfg.Difficulties = cfg.Difficulties[:0]
			for _, name := range names {
				d, err := variantgen.ParseDifficulty(name)
				if err != nil {
					return err
				}
				cfg.Difficulties = append(cfg.Difficulties, d)
			}
		}
		if cmd.Flags().Changed("count") {
			cfg.NumVariants, _ = cmd.Flags().GetInt("count")
		}
		if cmd.Flags().Changed("depth") {
			cfg.RecursionDepth, _ = cmd.Flags().GetInt("depth")
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return err
		}

		runID := uuid.NewString()
		ctx = llm.WithRunID(ctx, runID)

		gen := variantgen.New(provider, cfg,
			variantgen.WithTimeout(llm.ConfigFromEnv().Timeout))

		records, err := gen.Run(ctx, basePrompt)
		if err != nil {
			return fmt.Errorf("run %s: %w", runID, err)
		}

		outPath, _ := cmd.Flags().GetString("out")
		if err := variants.Write(outPath, records); err != nil {
			return err
		}

		variants.Report(os.Stdout, records)
		fmt.Printf("\nWrote %d variant(s) to %s (run %s, model %s)\n",
			len(records), outPath, runID, provider.ModelID())
		return nil
	},
}

func init() {
	generateCmd.Flags().StringSliceP("difficulty", "d", []string{"easier"}, "Target difficulties (easier, equivalent, harder)")
	generateCmd.Flags().IntP("count", "n", 3, "Variants to keep per difficulty")
	generateCmd.Flags().Int("depth", 0, "Recursion depth: generate variants of the variants")
	generateCmd.Flags().StringP("out", "o", "variants.json", "Output file")
	generateCmd.Flags().StringP("config", "c", "", "YAML file overriding transformation pools, personas and run parameters")
}
