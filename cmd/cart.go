package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/spf13/cobra"
)

type cartItemJSON struct {
	DishID   string `json:"dish_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

type cartJSON struct {
	Items         []cartItemJSON `json:"items"`
	TotalQuantity int            `json:"total_quantity"`
}

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local cart",
	}

	cmd.AddCommand(
		newCartAddCmd(app),
		newCartRemoveCmd(app),
		newCartListCmd(app),
		newCartClearCmd(app),
	)

	return cmd
}

func newCartAddCmd(app *app) *cobra.Command {
	var item domain.CartItem
	var dishID string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a dish to the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			item.DishID = domain.DishID(dishID)
			cart, err := app.cart.Add(cmd.Context(), item)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s. Cart has %d item(s).\n", dishID, cart.TotalQuantity())
			return err
		},
	}

	cmd.Flags().StringVar(&dishID, "dish", "", "Dish ID")
	cmd.Flags().StringVar(&item.Name, "name", "", "Dish name")
	cmd.Flags().IntVar(&item.Quantity, "qty", 1, "Quantity")
	cmd.Flags().StringVar(&item.Note, "note", "", "Note for the kitchen")
	_ = cmd.MarkFlagRequired("dish")

	return cmd
}

func newCartRemoveCmd(app *app) *cobra.Command {
	var dishID string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a dish from the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.cart.Remove(cmd.Context(), domain.DishID(dishID)); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", dishID)
			return err
		},
	}

	cmd.Flags().StringVar(&dishID, "dish", "", "Dish ID")
	_ = cmd.MarkFlagRequired("dish")

	return cmd
}

func newCartListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cart, err := app.cart.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				payload := cartJSON{Items: []cartItemJSON{}, TotalQuantity: cart.TotalQuantity()}
				for _, item := range cart.Sorted() {
					payload.Items = append(payload.Items, cartItemJSON{
						DishID:   string(item.DishID),
						Name:     item.Name,
						Quantity: item.Quantity,
						Note:     item.Note,
					})
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(payload)
			}

			if cart.IsEmpty() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cart is empty.")
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "DISH\tNAME\tQTY\tNOTE")
			for _, item := range cart.Sorted() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", item.DishID, item.Name, item.Quantity, item.Note)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCartClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cart.Clear(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared.")
			return err
		},
	}
}
