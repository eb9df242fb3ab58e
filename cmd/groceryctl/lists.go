package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sharmaeishan/Grocery-list-Manager/client"
)

// parseItems accepts a JSON array of {name, quantity, purchased}.
func parseItems(raw string) ([]client.GroceryItem, error) {
	if raw == "" {
		return []client.GroceryItem{}, nil
	}
	var items []client.GroceryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("--items must be a JSON array: %w", err)
	}
	return items, nil
}

func newListsCmd(s *settings) *cobra.Command {
	listsCmd := &cobra.Command{Use: "lists", Short: "Grocery list operations"}

	// create
	var title, itemsJSON string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a grocery list",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(itemsJSON)
			if err != nil {
				return err
			}
			id, err := s.client().CreateList(cmd.Context(), title, items)
			if err != nil {
				return err
			}
			return s.render(client.MessageResponse{Message: "Grocery list created successfully", ID: id})
		},
	}
	createCmd.Flags().StringVarP(&title, "title", "t", "", "List title (required)")
	createCmd.Flags().StringVarP(&itemsJSON, "items", "i", "", `Items as JSON, e.g. '[{"name":"milk","quantity":2}]'`)
	_ = createCmd.MarkFlagRequired("title")
	listsCmd.AddCommand(createCmd)

	// ls
	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List all grocery lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := s.client().ListLists(cmd.Context())
			if err != nil {
				return err
			}
			return s.render(lists)
		},
	}
	listsCmd.AddCommand(lsCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get LIST_ID",
		Short: "Get a grocery list by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := s.client().GetList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return s.render(l)
		},
	}
	listsCmd.AddCommand(getCmd)

	// replace
	var newTitle, newItems string
	replaceCmd := &cobra.Command{
		Use:   "replace LIST_ID",
		Short: "Replace title and items of a grocery list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(newItems)
			if err != nil {
				return err
			}
			if err := s.client().ReplaceList(cmd.Context(), args[0], newTitle, items); err != nil {
				return err
			}
			return s.render(client.MessageResponse{Message: "Grocery list updated successfully"})
		},
	}
	replaceCmd.Flags().StringVarP(&newTitle, "title", "t", "", "New title (required)")
	replaceCmd.Flags().StringVarP(&newItems, "items", "i", "", "New items as JSON array (empty clears the list)")
	_ = replaceCmd.MarkFlagRequired("title")
	listsCmd.AddCommand(replaceCmd)

	// rm
	rmCmd := &cobra.Command{
		Use:   "rm LIST_ID",
		Short: "Delete a grocery list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.client().DeleteList(cmd.Context(), args[0]); err != nil {
				return err
			}
			return s.render(client.MessageResponse{Message: "Grocery list deleted successfully"})
		},
	}
	listsCmd.AddCommand(rmCmd)

	return listsCmd
}
