package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List enabled games and their backup status",
	Run: func(cmd *cobra.Command, args []string) {
		games := svc.Games()
		if len(games) == 0 {
			fmt.Println("No enabled games found in configuration.")
			return
		}
		fmt.Println("Available games:")
		for _, game := range games {
			status := "No backup"
			if svc.HasBackup(game.Name) {
				status = "Has backup"
			}
			fmt.Printf("  %s - %s (%d save locations)\n", game.Name, status, len(game.Saves))
		}
	},
}
