package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/docker/go-units"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cartridge/utils"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Show the configuration in use and the resolved variables",
	Run: func(cmd *cobra.Command, args []string) {
		utils.Bold.Println("Doctor:")
		fmt.Printf("    Using config: %s\n", v.ConfigFileUsed())

		backupRoot := svc.BackupRoot()
		if _, err := os.Stat(backupRoot); os.IsNotExist(err) {
			utils.Warn.Printf("    Backup root %s doesn't exist yet. It will be created on first backup.\n", backupRoot)
		} else {
			fmt.Printf("    Backup root: %s", backupRoot)
			if size, err := utils.DirSize(backupRoot); err == nil {
				fmt.Printf(" (%s)", units.BytesSize(float64(size)))
			}
			fmt.Println()
		}

		vars := svc.Vars()
		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println()
		w := table.NewWriter()
		w.AppendHeader(table.Row{"VARIABLE", "VALUE"})
		for _, name := range names {
			w.AppendRow(table.Row{name, vars[name]})
		}
		fmt.Println(w.Render())
	},
}
