package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twinops/twinctl/pkg/session"
)

//nolint:gochecknoglobals // Cobra boilerplate
var loginTwinID string

//nolint:gochecknoglobals // Cobra boilerplate
var loginToken string

//nolint:gochecknoglobals // Cobra boilerplate
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the twin identity used by every other command",
	Long: `Store the twin id (and optionally an auth token) that scopes all
backend calls. The id comes from your identity provider account.

Example:
  twinctl login --twin-id 3f8a... --token eyJhb...`,
	RunE: runLogin,
}

//nolint:gochecknoglobals // Cobra boilerplate
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored twin identity",
	RunE:  runLogout,
}

//nolint:gochecknoglobals // Cobra boilerplate
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the twin the CLI is operating on",
	RunE:  runWhoami,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	loginCmd.Flags().StringVar(&loginTwinID, "twin-id", "", "Twin id from your identity provider (required)")
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Auth token sent as a bearer token")
	_ = loginCmd.MarkFlagRequired("twin-id")
}

func runLogin(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = sessionFilePath()
	if err != nil {
		return err
	}

	err = session.Save(path, session.Session{TwinID: loginTwinID, AuthToken: loginToken})
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as twin %s\n", loginTwinID)
	return err
}

func runLogout(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = sessionFilePath()
	if err != nil {
		return err
	}

	err = session.Clear(path)
	if err != nil {
		return err
	}

	fmt.Println("Logged out")
	return err
}

func runWhoami(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = sessionFilePath()
	if err != nil {
		return err
	}

	var sess session.Session
	sess, err = session.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("Twin: %s\n", sess.TwinID)
	if sess.AuthToken != "" {
		fmt.Println("Auth token: stored")
	}
	fmt.Printf("Since: %s\n", sess.SavedAt.Format("2006-01-02 15:04"))
	return err
}
