package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/frontgo/config"
)

const defaultRepository = "s0up4200/frontgo"

func newUpdateCmd(a *app) *cobra.Command {
	var (
		repository string
		checkOnly  bool
	)

	cmd := &cobra.Command{
		Use:               "update",
		Short:             "Update frontgo to the latest release",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := semver.ParseTolerant(version)
			if err != nil {
				return fmt.Errorf("cannot update a development build (version %q)", version)
			}

			// update.repository applies when the config loads; a missing API key
			// must not block updating
			if !cmd.Flags().Changed("repository") {
				if cfg, err := config.Load(a.cfgFile); err == nil && cfg.Update.Repository != "" {
					repository = cfg.Update.Repository
				}
			}

			updater, err := selfupdate.NewUpdater(selfupdate.Config{
				Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
			})
			if err != nil {
				return fmt.Errorf("failed to create updater: %w", err)
			}

			latest, found, err := updater.DetectLatest(cmd.Context(), selfupdate.ParseSlug(repository))
			if err != nil {
				return fmt.Errorf("error occurred while detecting version: %w", err)
			}
			if !found {
				return fmt.Errorf("no release found for %s", repository)
			}

			out := cmd.OutOrStdout()
			if latest.LessOrEqual(current.String()) {
				fmt.Fprintf(out, "frontgo %s is up to date\n", current)
				return nil
			}
			if checkOnly {
				fmt.Fprintf(out, "frontgo %s is available (current %s)\n", latest.Version(), current)
				return nil
			}

			exe, err := selfupdate.ExecutablePath()
			if err != nil {
				return fmt.Errorf("could not locate executable path: %w", err)
			}
			if err := updater.UpdateTo(cmd.Context(), latest, exe); err != nil {
				return fmt.Errorf("error occurred while updating binary: %w", err)
			}

			fmt.Fprintf(out, "Successfully updated to frontgo %s\n", latest.Version())
			return nil
		},
	}

	cmd.Flags().StringVar(&repository, "repository", defaultRepository, "GitHub repository (owner/name) to update from")
	cmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
	return cmd
}
