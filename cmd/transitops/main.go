package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transitops",
		Short: "Transit demand forecasting and fleet monitoring engine",
	}

	rootCmd.AddCommand(predictCmd())
	rootCmd.AddCommand(optimizeCmd())
	rootCmd.AddCommand(bunchingCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func predictCmd() *cobra.Command {
	var opts engineOptions
	var route string
	var hours int

	cmd := &cobra.Command{
		Use:   "predict [project-path]",
		Short: "Forecast boarding and alighting demand for a route",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPredict(args, route, hours, opts)
		},
	}
	cmd.Flags().StringVar(&route, "route", "", "route id to forecast (default: all routes)")
	cmd.Flags().IntVar(&hours, "hours", 6, "forecast horizon in hours")
	opts.register(cmd)
	return cmd
}

func optimizeCmd() *cobra.Command {
	var opts engineOptions

	cmd := &cobra.Command{
		Use:   "optimize [project-path]",
		Short: "Recommend dispatch frequency adjustments per route",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runOptimize(args, opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func bunchingCmd() *cobra.Command {
	var opts engineOptions
	var feedURL string

	cmd := &cobra.Command{
		Use:   "bunching [project-path]",
		Short: "Detect vehicles bunched too close together on a route",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBunching(args, feedURL, opts)
		},
	}
	cmd.Flags().StringVar(&feedURL, "feed-url", "", "GTFS-RT vehicle positions URL (default: synthetic fleet)")
	opts.register(cmd)
	return cmd
}

func serveCmd() *cobra.Command {
	var opts engineOptions
	var feedURL string
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Serve engine results as JSON for a dashboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runServe(args, feedURL, port, opts)
		},
	}
	cmd.Flags().StringVar(&feedURL, "feed-url", "", "GTFS-RT vehicle positions URL (default: synthetic fleet)")
	cmd.Flags().IntVar(&port, "port", 8080, "listen port")
	opts.register(cmd)
	return cmd
}
