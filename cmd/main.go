package main

import (
	"fmt"
	"os"

	"github.com/Serdar-Sara/FitnessTracker/config"
	"github.com/Serdar-Sara/FitnessTracker/routes"
	"github.com/Serdar-Sara/FitnessTracker/utils"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "fitnesstracker",
		Short: "Fitness tracker web backend",
	}

	var addr string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitDB()

			log := utils.NewLogger(os.Getenv("ENV"))
			defer log.Sync()

			r := routes.SetupRouter(log)
			return r.Run(addr)
		},
	}
	serve.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run: func(cmd *cobra.Command, args []string) {
			config.InitDB()
			config.Migrate()
		},
	}

	root.AddCommand(serve, migrate)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
