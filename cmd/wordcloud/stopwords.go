package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newStopwordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stopwords",
		Short: "Stopword data acquisition and verification commands",
	}

	cmd.AddCommand(newStopwordsDownloadCmd())
	cmd.AddCommand(newStopwordsVerifyCmd())
	return cmd
}

func newStopwordsDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Fetch the English stopword list and populate the local cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			src, err := cfg.StopwordSource()
			if err != nil {
				return err
			}

			set, err := src.Fetch(cmd.Context(), os.Stdout)
			if err != nil {
				return err
			}
			fmt.Printf("stopword cache ready (%d words)\n", set.Len())
			return nil
		},
	}
}

func newStopwordsVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify the cached stopword list against its lock record",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			src, err := cfg.StopwordSource()
			if err != nil {
				return err
			}

			if err := src.Verify(); err != nil {
				return fmt.Errorf("stopword cache verification failed: %w", err)
			}
			fmt.Printf("stopword cache verified: %s\n", src.CachePath())
			return nil
		},
	}
}
