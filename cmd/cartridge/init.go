package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cartridge/utils"
)

const exampleConfigName = "cartridge.toml"

const exampleConfig = `# cartridge configuration
#
# Variables are resolved top to bottom. ${home} and ${config} are
# provided by cartridge and cannot be redefined.

[[var]]
name = "saves"
value = "${home}/.local/share"

[[game]]
name = "ExampleGame"
# enabled = false

[[game.save]]
path = "${saves}/ExampleGame"
# Leave files out (or empty) to back up everything under path.
# files = ["*.sav", "backup_*.dat"]
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example configuration file to the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(exampleConfigName); err == nil {
			exit(fmt.Errorf("%s already exists, refusing to overwrite it", exampleConfigName))
		}
		err := os.WriteFile(exampleConfigName, []byte(exampleConfig), 0644)
		if err != nil {
			exit(err)
		}
		utils.Green.Printf("%s written. Edit it before running cartridge backup.\n", exampleConfigName)
	},
}
