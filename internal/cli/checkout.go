package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/apperr"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/checkout"
)

func newAddressCmd(get func() *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Manage delivery addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			book := checkout.NewBook(e.inst.Store)
			list, err := book.List(cmd.Context())
			if err != nil {
				return err
			}
			selected, _, err := book.Selected(cmd.Context())
			if err != nil {
				return err
			}

			tw := table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "\tID\tLABEL\tADDRESS")
			for _, a := range list {
				mark := ""
				if a.ID == selected.ID {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s %s\n", mark, a.ID, a.Label, a.Line, a.City, a.State)
			}
			return tw.Flush()
		},
	}

	var in checkout.AddressInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Save an address and select it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			addr, err := checkout.NewBook(e.inst.Store).Add(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("%s", apperr.UserMessage(err, checkout.MsgAddressRequired))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Address saved (%s)\n", addr.ID)
			return nil
		},
	}
	add.Flags().StringVar(&in.Label, "label", "", "short name such as Home")
	add.Flags().StringVar(&in.Line, "line", "", "street address")
	add.Flags().StringVar(&in.City, "city", "", "city")
	add.Flags().StringVar(&in.State, "state", "", "state")

	byID := func(use, short, done string, run func(b *checkout.Book, cmd *cobra.Command, id string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <address-id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e := get()
				if err := requireAuth(e); err != nil {
					return err
				}
				if err := run(checkout.NewBook(e.inst.Store), cmd, args[0]); err != nil {
					return fmt.Errorf("%s", apperr.UserMessage(err, err.Error()))
				}
				fmt.Fprintln(cmd.OutOrStdout(), done)
				return nil
			},
		}
	}

	cmd.AddCommand(
		add,
		byID("select", "Use an address for delivery", "Delivery address selected",
			func(b *checkout.Book, cmd *cobra.Command, id string) error { return b.Select(cmd.Context(), id) }),
		byID("remove", "Delete an address", "Address removed",
			func(b *checkout.Book, cmd *cobra.Command, id string) error { return b.Remove(cmd.Context(), id) }),
	)
	return cmd
}

func newCheckoutCmd(get func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Start a gateway payment for the cart and print the form to submit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			form, err := checkout.StartPayment(cmd.Context(), checkout.NewBook(e.inst.Store), e.inst.API.Payments)
			if err != nil {
				return fmt.Errorf("%s", apperr.UserMessage(err, checkout.MsgPaymentFailed))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "POST %s\n", form.Action)
			for _, f := range form.Fields {
				fmt.Fprintf(out, "  %s=%s\n", f.Name, f.Value)
			}
			return nil
		},
	}
}

func newOrdersCmd(get func() *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List past orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			orders, err := e.inst.API.Orders.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ORDER\tSTATUS\tTOTAL\tPLACED")
			for _, o := range orders {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", o.ID, o.Status, o.TotalAmount, o.CreatedAt)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Place an order for the cart using the selected address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			addr, ok, err := checkout.NewBook(e.inst.Store).Selected(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s", checkout.MsgSelectAddress)
			}
			created, err := e.inst.API.Orders.Create(cmd.Context(), addr.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order placed successfully! #%d total %s\n", created.OrderID, created.TotalAmount)
			return nil
		},
	})
	return cmd
}
