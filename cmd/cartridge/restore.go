package main

import (
	"github.com/spf13/cobra"

	"cartridge/utils"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [game_name]",
	Short: "Restore one game, or all enabled games",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		if len(args) == 1 {
			err = svc.Restore(args[0])
		} else {
			err = svc.RestoreAll()
		}
		if err != nil {
			exit(err)
		}
		utils.Green.Println("Restore successful")
	},
}
