package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider/seller"
)

// readSecret takes the flag value, or the first line of in.
func readSecret(flag string, in io.Reader) (string, error) {
	if flag != "" {
		return flag, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLoginCmd(get func() *env) *cobra.Command {
	var (
		password string
		asSeller bool
	)
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in as a shopper or seller",
		Long:  "Sign in. Without --password the password is read from the first line of stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := get()
			pw, err := readSecret(password, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctrl := e.inst.Controller
			var landing string
			if asSeller {
				landing, err = ctrl.LoginWith(cmd.Context(), seller.Name, args[0], pw)
			} else {
				landing, err = ctrl.Login(cmd.Context(), args[0], pw)
			}
			if err != nil {
				return fmt.Errorf("%s", apperr.UserMessage(err, "login failed"))
			}

			s := ctrl.Session()
			role := "shopper"
			if s.IsStaff() {
				role = "seller"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s), landing %s\n", s.Username(), role, landing)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (read from stdin when empty)")
	cmd.Flags().BoolVar(&asSeller, "seller", false, "use the seller login only")
	return cmd
}

func newLogoutCmd(get func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := get().inst.Controller.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(get func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			s := e.inst.Controller.Session()
			fmt.Fprintf(cmd.OutOrStdout(), "%s staff=%t\n", s.Username(), s.IsStaff())
			return nil
		},
	}
}

func newRegisterCmd(get func() *env) *cobra.Command {
	var (
		email     string
		password  string
		secretKey string
	)
	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a shopper account, or a seller account with --secret-key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := get()
			pw, err := readSecret(password, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if secretKey != "" {
				err = e.creds.RegisterSeller(cmd.Context(), args[0], pw, secretKey)
			} else {
				err = e.creds.Register(cmd.Context(), args[0], email, pw)
			}
			if err != nil {
				return fmt.Errorf("%s", apperr.UserMessage(err, "registration failed"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created. Run `shopctl login` to sign in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address (shoppers)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (read from stdin when empty)")
	cmd.Flags().StringVar(&secretKey, "secret-key", "", "seller registration key")
	return cmd
}
