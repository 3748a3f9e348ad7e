package cmd

import (
	"github.com/0glabs/zk-cli/common"
	"github.com/0glabs/zk-cli/namespace"
	"github.com/0glabs/zk-cli/node"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:     "ls [path]",
	Aliases: []string{"list", "l", "ll"},
	Short:   "List directory contents",
	Args:    cobra.MaximumNArgs(1),
	RunE:    ls,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func ls(cmd *cobra.Command, args []string) error {
	path := node.RootPath
	if len(args) > 0 {
		path = normalize(args[0])
	}

	client, err := connect(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	walker := namespace.NewWalker(client, formatter(), common.StandardLogOption())
	return walker.PrintList(cmd.OutOrStdout(), path)
}
