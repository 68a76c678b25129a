package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"cartridge/backup"
	"cartridge/config"
	"cartridge/utils"
)

var (
	cfg *config.Config
	v   *viper.Viper
	svc *backup.Service
	log *zap.Logger

	rootCmd = &cobra.Command{
		Use:   "cartridge",
		Short: "Back up and restore game save files",
	}
)

func main() { rootCmd.Execute() }

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(initCmd)

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the TOML configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cobra.OnInitialize(func() {
		var (
			verbose, _ = rootCmd.PersistentFlags().GetBool("verbose")
			err        error
		)
		log, err = newLogger(verbose)
		if err != nil {
			exit(fmt.Errorf("could not create a new logger: %v", err))
		}
		// `init` runs before any config exists.
		if willRunInit() {
			return
		}
		initService()
	})
}

func initService() {
	configFlag, _ := rootCmd.PersistentFlags().GetString("config")
	configFile, err := config.Locate(configFlag)
	if err != nil {
		exit(err)
	}
	log.Info("using config file", zap.String("path", configFile))

	cfg, v, err = config.Read(configFile)
	if err != nil {
		exit(err)
	}
	log.Info("configuration loaded",
		zap.Int("games", len(cfg.Games)),
		zap.Int("variables", len(cfg.Vars)))

	svc, err = backup.FromConfig(cfg, configFile, log)
	if err != nil {
		exit(err)
	}
}

// Check whether initCmd is going to run. Only the command position
// counts: a game may legitimately be named `init`, so arguments after
// the subcommand must not match.
func willRunInit() bool {
	for _, arg := range os.Args[1:] {
		if len(arg) > 0 && arg[0] == '-' {
			continue
		}
		return arg == "init"
	}
	return false
}

func errPrintln(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", utils.Red.Sprint("Error:"), err)
	}
}

func exit(err error) {
	if err != nil {
		errPrintln(err)
		os.Exit(1)
	}
	os.Exit(0)
}
