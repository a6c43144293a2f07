package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"workplace-geo/internal/config"
	"workplace-geo/internal/location"
)

var (
	configPath string
	timeout    time.Duration
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "locctl",
		Short:         "Look up countries, states, cities and postal codes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default: search ./config.yaml, ./config/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall timeout for upstream lookups")

	rootCmd.AddCommand(
		getCountriesCmd(),
		getStatesCmd(),
		getCitiesCmd(),
		getPostalCmd(),
		getValidateCmd(),
		getHierarchyCmd(),
	)
	return rootCmd
}

// withService builds a resolver from the configuration and hands it to fn
func withService(cmd *cobra.Command, fn func(ctx context.Context, svc location.Service) (any, error)) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	svc, err := location.NewLocationService(ctx, cfg, cfg.NewLogger())
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	out, err := fn(ctx, svc)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func getCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries [search]",
		Short: "List countries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(_ context.Context, svc location.Service) (any, error) {
				return svc.GetCountries(optionalArg(args, 0)), nil
			})
		},
	}
}

func getStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states <countryCode> [search]",
		Short: "List the states of a country",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(_ context.Context, svc location.Service) (any, error) {
				return svc.GetStates(args[0], optionalArg(args, 1)), nil
			})
		},
	}
}

func getCitiesCmd() *cobra.Command {
	var stateCode, search string
	cmd := &cobra.Command{
		Use:   "cities <countryCode>",
		Short: "List the cities of a country or state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(_ context.Context, svc location.Service) (any, error) {
				return svc.GetCities(args[0], stateCode, search), nil
			})
		},
	}
	cmd.Flags().StringVar(&stateCode, "state", "", "ISO 3166-2 subdivision code")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive filter")
	return cmd
}

func getPostalCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "postal <countryCode> <city>",
		Short: "List the postal codes of a city",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc location.Service) (any, error) {
				return svc.GetPostalCodes(ctx, args[0], args[1], search), nil
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Postal code prefix or place name filter")
	return cmd
}

type validateOutput struct {
	CountryCode string `json:"countryCode"`
	PostalCode  string `json:"postalCode"`
	Result      string `json:"result"`
}

func getValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <countryCode> <postalCode>",
		Short: "Check a postal code against its country's format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(_ context.Context, svc location.Service) (any, error) {
				return validateOutput{
					CountryCode: args[0],
					PostalCode:  args[1],
					Result:      string(svc.ValidatePostalCode(args[0], args[1])),
				}, nil
			})
		},
	}
}

func getHierarchyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hierarchy [countryCode] [stateCode]",
		Short: "Show a country with its states and a state's cities",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(_ context.Context, svc location.Service) (any, error) {
				return svc.GetLocationHierarchy(optionalArg(args, 0), optionalArg(args, 1)), nil
			})
		},
	}
}
