package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"os/user"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/clamsh/clamsh/core/config"
	"github.com/clamsh/clamsh/shell"
)

var cfgPath string

// loadConfig reads the configuration, falling back to the built-in
// defaults when no file exists. The shell should still come up on a
// machine that was never `clamsh init`ed.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clamsh",
	Short: "A small interactive shell of builtins",
	Long:  `An interactive shell whose commands are all builtins: read, cd, pushd/popd/dirs, pwd, help, history, times, unset and exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		s := shell.New(cfg, afero.NewOsFs(), shell.NewIO(os.Stdin, os.Stdout, os.Stderr))
		s.IsPTY = term.IsTerminal(int(os.Stdin.Fd()))

		username := "root"
		homedir := ""
		if u, err := user.Current(); err == nil {
			username = u.Username
			homedir = u.HomeDir
		} else if env := os.Getenv("USER"); env != "" {
			username = env
		}
		hostname, err := os.Hostname()
		if err != nil {
			log.Printf("hostname lookup failed: %v", err)
			hostname = "localhost"
		}

		s.Init(username, hostname)
		// Init guesses the home directory; the OS knows the real one.
		if homedir != "" {
			s.Vars.SetString(shell.EnvHome, homedir)
			if err := s.Chdir(homedir); err == nil {
				s.Vars.SetString(shell.EnvPWD, s.Getwd())
			}
		}

		os.Exit(s.RunInteractive())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
