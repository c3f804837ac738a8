// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofolio-admin",
	Short: "GoFolio-Admin is a personal portfolio site with a web admin panel",
	Long: `GoFolio-Admin serves a personal portfolio website and provides
a password-protected admin panel for managing skills, services, projects,
certifications, contact messages, and site settings.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
