package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/tutorials/cmd/cli/guard"
	"github.com/myrjola/tutorials/cmd/cli/photos"
	"github.com/myrjola/tutorials/internal/errors"
	"github.com/spf13/cobra"
)

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(guard.Group)
	rootCmd.AddCommand(guard.Decide)
	rootCmd.AddGroup(photos.Group)
	rootCmd.AddCommand(photos.Sync)
}

var rootCmd = &cobra.Command{
	Use:  "tutorials-cli",
	Long: `Command line utilities for the tutorials web application`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
