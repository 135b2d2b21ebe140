package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCacheCommand(cctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the transcription/translation cache",
	}

	cacheCmd.AddCommand(newCacheStatusCommand(cctx))
	cacheCmd.AddCommand(newCacheClearCommand(cctx))
	cacheCmd.AddCommand(newCacheForgetCommand(cctx))

	return cacheCmd
}

func newCacheStatusCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show cache contents and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderKeyValues("Cache", [][2]string{
				{"Database", stats.Path},
				{"Size", formatBytes(stats.SizeBytes)},
				{"Transcribed files", strconv.Itoa(stats.Files)},
				{"Enriched variants", strconv.Itoa(stats.Translations)},
			}))
			return nil
		},
	}
}

func newCacheClearCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every cached transcription and enrichment",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
			return nil
		},
	}
}

func newCacheForgetCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "forget <data-hash>",
		Short: "Drop one file's transcription and its enrichments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteTokens(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Forgot %s and its enrichments.\n", args[0])
			return nil
		},
	}
}
