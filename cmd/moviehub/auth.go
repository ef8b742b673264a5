package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in and save the session token",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLoginCmd,
}

var registerCmd = &cobra.Command{
	Use:   "register [username]",
	Short: "Create an account and save the session token",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRegisterCmd,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the saved session token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clearToken(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := NewClient(serverURL)
		user, err := client.Profile()
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(user)
			return nil
		}
		fmt.Printf("%s <%s>\n", user.Username, user.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func promptPassword(label string) string {
	fmt.Print(label)
	data, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func runLoginCmd(cmd *cobra.Command, args []string) error {
	username := ""
	if len(args) > 0 {
		username = args[0]
	}
	if username == "" {
		username = prompt("Username: ")
	}
	password := promptPassword("Password: ")

	client := NewClient(serverURL)
	session, err := client.Login(username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := saveToken(session.Token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	fmt.Printf("Logged in as %s\n", session.User.Username)
	return nil
}

func runRegisterCmd(cmd *cobra.Command, args []string) error {
	username := ""
	if len(args) > 0 {
		username = args[0]
	}
	if username == "" {
		username = prompt("Username: ")
	}
	email := prompt("Email: ")
	password := promptPassword("Password: ")
	password2 := promptPassword("Confirm password: ")

	client := NewClient(serverURL)
	session, err := client.Register(username, email, password, password2)
	if err != nil {
		return fmt.Errorf("register failed: %w", err)
	}
	if err := saveToken(session.Token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	fmt.Printf("Account created, logged in as %s\n", session.User.Username)
	return nil
}
