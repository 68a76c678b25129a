package main

import (
	"github.com/spf13/cobra"

	"cartridge/utils"
)

var backupCmd = &cobra.Command{
	Use:   "backup [game_name]",
	Short: "Back up one game, or all enabled games",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		if len(args) == 1 {
			err = svc.Backup(args[0])
		} else {
			err = svc.BackupAll()
		}
		if err != nil {
			exit(err)
		}
		utils.Green.Println("Backup successful")
	},
}
