package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/catalog"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/wishlist"
)

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func intArg(s, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return n, nil
}

func rating(p api.Product) string {
	if r, ok := p.RatingValue(); ok {
		return strconv.FormatFloat(r, 'f', 1, 64)
	}
	return "-"
}

func newProductsCmd(get func() *env) *cobra.Command {
	var (
		query  string
		filter catalog.Filter
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := get()
			products, err := e.inst.API.Products.List(cmd.Context(), api.ProductQuery{Q: query})
			if err != nil {
				return err
			}

			tw := table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tRATING")
			for _, p := range filter.Apply(products) {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.CategoryName(), p.Price, rating(p))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search term")
	cmd.Flags().StringSliceVar(&filter.Categories, "category", nil, "only these categories")
	cmd.Flags().Float64Var(&filter.MaxPrice, "max-price", 0, "highest price")
	cmd.Flags().Float64Var(&filter.MinRating, "min-rating", 0, "lowest rating; unrated products are hidden")
	return cmd
}

func newProductCmd(get func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product and its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := intArg(args[0], "product id")
			if err != nil {
				return err
			}
			e := get()
			p, err := e.inst.API.Products.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (#%d)\n%s  %s\nprice %s  rating %s  stock %d\n%s\n",
				p.Title, p.ID, p.Brand, p.CategoryName(), p.Price, rating(*p), p.Stock, p.Description)

			reviews, err := e.inst.API.Reviews.ByProduct(cmd.Context(), id)
			if err != nil {
				return nil
			}
			for _, r := range reviews {
				fmt.Fprintf(out, "  %d/5 %s by %s: %s\n", r.Rating, r.Title, r.Author(), r.Body)
			}
			return nil
		},
	}
}

func newCartCmd(get func() *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			cart, err := e.inst.API.Cart.Get(cmd.Context())
			if err != nil {
				return err
			}

			tw := table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ITEM\tPRODUCT\tQTY\tTOTAL")
			for _, it := range cart.Items {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\n", it.ID, it.DisplayTitle(), it.Quantity, it.LineTotal())
			}
			sum := catalog.CartTotal(cart.Items)
			fmt.Fprintf(tw, "\t%d items\t\t%.2f\n", sum.Items, sum.Subtotal)
			return tw.Flush()
		},
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			id, err := intArg(args[0], "product id")
			if err != nil {
				return err
			}
			if _, err := e.inst.API.Cart.Add(cmd.Context(), id, qty); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product added to cart")
			return nil
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "quantity")

	remove := &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			id, err := intArg(args[0], "item id")
			if err != nil {
				return err
			}
			if err := e.inst.API.Cart.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Item removed from cart")
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			if err := e.inst.API.Cart.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}

	cmd.AddCommand(add, remove, clearCmd)
	return cmd
}

func newWishlistCmd(get func() *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Show the wishlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := get()
			if err := requireAuth(e); err != nil {
				return err
			}
			items, err := e.inst.API.Wishlist.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "PRODUCT\tTITLE\tPRICE")
			for _, it := range items {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", it.Product.ID, it.Product.Title, it.Product.Price)
			}
			return tw.Flush()
		},
	}

	// each subcommand takes a product id
	byProduct := func(use, short string, run func(cmd *cobra.Command, e *env, id int) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <product-id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e := get()
				if err := requireAuth(e); err != nil {
					return err
				}
				id, err := intArg(args[0], "product id")
				if err != nil {
					return err
				}
				return run(cmd, e, id)
			},
		}
	}

	cmd.AddCommand(
		byProduct("add", "Add a product to the wishlist", func(cmd *cobra.Command, e *env, id int) error {
			if err := e.inst.API.Wishlist.Add(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Item added to wishlist!")
			return nil
		}),
		byProduct("remove", "Remove a product from the wishlist", func(cmd *cobra.Command, e *env, id int) error {
			if err := e.inst.API.Wishlist.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Item removed from wishlist")
			return nil
		}),
		byProduct("move", "Move a product from the wishlist to the cart", func(cmd *cobra.Command, e *env, id int) error {
			res, err := wishlist.MoveToCart(cmd.Context(), e.inst.API.Cart, e.inst.API.Wishlist, id)
			if err != nil {
				return fmt.Errorf("added=%t removed=%t: %w", res.Added, res.Removed, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), wishlist.MsgMoved)
			return nil
		}),
	)
	return cmd
}
