package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"realtyhub/models"
	"realtyhub/session"
)

var (
	authEmail    string
	authPassword string
	authFirst    string
	authLast     string
	authPhone    string
)

// signInCmd signs in and persists the session
var signInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in and remember the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, closeFn, err := openSession(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeFn()

		p, err := mgr.BeginSignIn(cmd.Context(), authEmail, authPassword)
		if err != nil {
			return err
		}
		return awaitSession(cmd.OutOrStdout(), mgr, p, "Signing in...")
	},
}

// signUpCmd creates an account and signs in
var signUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, closeFn, err := openSession(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeFn()

		p, err := mgr.BeginSignUp(cmd.Context(), models.Profile{
			FirstName: authFirst,
			LastName:  authLast,
			Email:     authEmail,
			Password:  authPassword,
			Phone:     authPhone,
		})
		if err != nil {
			return err
		}
		return awaitSession(cmd.OutOrStdout(), mgr, p, "Creating account...")
	},
}

// signOutCmd forgets the stored session
var signOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out and forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, closeFn, err := openSession(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := mgr.SignOut(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

// whoamiCmd shows the stored session
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, closeFn, err := openSession(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeFn()

		printWhoami(cmd.OutOrStdout(), mgr)
		return nil
	},
}

// awaitSession blocks on a pending attempt and reports its outcome.
func awaitSession(w io.Writer, mgr *session.Manager, p *session.Pending, waiting string) error {
	if !p.Resolved() {
		fmt.Fprintln(w, waiting)
	}
	if _, err := p.Wait(); err != nil {
		return err
	}
	printWhoami(w, mgr)
	return nil
}

func printWhoami(w io.Writer, mgr *session.Manager) {
	s, ok := mgr.Current()
	if !ok {
		fmt.Fprintln(w, "Not signed in.")
		return
	}
	fmt.Fprintf(w, "Signed in as %s", s.Name())
	if s.DisplayName != "" {
		fmt.Fprintf(w, " <%s>", s.Email)
	}
	fmt.Fprintln(w)
}

func init() {
	for _, c := range []*cobra.Command{signInCmd, signUpCmd} {
		c.Flags().StringVarP(&authEmail, "email", "e", "", "Email address")
		c.Flags().StringVarP(&authPassword, "password", "p", "", "Password")
	}
	signUpCmd.Flags().StringVar(&authFirst, "first-name", "", "First name")
	signUpCmd.Flags().StringVar(&authLast, "last-name", "", "Last name")
	signUpCmd.Flags().StringVar(&authPhone, "phone", "", "Phone number")
}
