package main

import (
	"github.com/spf13/cobra"

	"github.com/sharmaeishan/Grocery-list-Manager/client"
)

func newItemsCmd(s *settings) *cobra.Command {
	itemsCmd := &cobra.Command{Use: "items", Short: "Item operations within a grocery list"}

	// add
	var quantity int
	var purchased bool
	addCmd := &cobra.Command{
		Use:   "add LIST_ID NAME",
		Short: "Append an item to a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := client.GroceryItem{Name: args[1], Quantity: quantity, Purchased: purchased}
			if err := s.client().AddItem(cmd.Context(), args[0], item); err != nil {
				return err
			}
			return s.render(client.MessageResponse{Message: "Item added to grocery list"})
		},
	}
	addCmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity")
	addCmd.Flags().BoolVarP(&purchased, "purchased", "p", false, "Mark as already purchased")
	itemsCmd.AddCommand(addCmd)

	// purchase
	var undo bool
	purchaseCmd := &cobra.Command{
		Use:   "purchase LIST_ID NAME",
		Short: "Mark the first item with NAME as purchased",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.client().SetPurchased(cmd.Context(), args[0], args[1], !undo); err != nil {
				return err
			}
			return s.render(client.MessageResponse{Message: "Item status updated"})
		},
	}
	purchaseCmd.Flags().BoolVar(&undo, "undo", false, "Mark as not purchased instead")
	itemsCmd.AddCommand(purchaseCmd)

	// rm
	rmCmd := &cobra.Command{
		Use:   "rm LIST_ID NAME",
		Short: "Remove every item with NAME from a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.client().DeleteItem(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			return s.render(client.MessageResponse{Message: "Item deleted from grocery list"})
		},
	}
	itemsCmd.AddCommand(rmCmd)

	return itemsCmd
}
