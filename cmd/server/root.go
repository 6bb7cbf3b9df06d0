package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ecoshare",
	Short: "EcoShare - donation coordination platform",
	Long: `EcoShare connects surplus-goods donors with NGOs and delivery volunteers.

It provides a REST API for donation listings, claims, deliveries and NGO needs.

Run 'ecoshare serve' to start the server, or 'ecoshare sweep' to expire
overdue donations once and exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sweepCmd)
}
