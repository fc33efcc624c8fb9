package main

import "github.com/spf13/cobra"

func newAddCommand(ctx *commandContext) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add shows, characters or actors",
	}
	addCmd.AddCommand(newAddShowCommand(ctx))
	addCmd.AddCommand(newAddCharacterCommand(ctx))
	addCmd.AddCommand(newAddActorCommand())
	return addCmd
}

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Edit an existing show or character",
	}
	updateCmd.AddCommand(newUpdateShowCommand(ctx))
	updateCmd.AddCommand(newUpdateCharacterCommand(ctx))
	return updateCmd
}
