// ABOUTME: Login, logout and whoami commands.
// ABOUTME: Prompts for the password without echo when run in a terminal.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harper/neonotes/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in",
	Long: `Sign in with a demo account:

  alex@example.com / student     member
  admin@neonotes.com / admin     administrator`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		in := bufio.NewReader(cmd.InOrStdin())

		email := ""
		if len(args) == 1 {
			email = args[0]
		} else {
			fmt.Print("Email: ")
			line, err := readLine(in)
			if err != nil {
				return err
			}
			email = line
		}

		if !cmd.Flags().Changed("password") {
			var err error
			password, err = promptPassword(in)
			if err != nil {
				return err
			}
		}

		user, err := state.Login(cmd.Context(), strings.TrimSpace(email), password)
		if err != nil {
			return err
		}
		fmt.Println(ui.Success("Signed in as " + ui.FormatUser(&user)))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := state.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("failed to sign out: %w", err)
		}
		fmt.Println(ui.Success("Signed out"))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.FormatUser(state.CurrentUser()))
		return nil
	},
}

func promptPassword(in *bufio.Reader) (string, error) {
	fmt.Print("Password: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(pw), nil
	}
	return readLine(in)
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	loginCmd.Flags().StringP("password", "p", "", "password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
