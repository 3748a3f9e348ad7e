package cmd

import (
	"github.com/0glabs/zk-cli/common"
	"github.com/0glabs/zk-cli/namespace"
	"github.com/0glabs/zk-cli/node"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:     "tree [path]",
	Aliases: []string{"t"},
	Short:   "List contents of directories in a tree-like format",
	Args:    cobra.MaximumNArgs(1),
	RunE:    tree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func tree(cmd *cobra.Command, args []string) error {
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
	return walker.PrintTree(cmd.OutOrStdout(), path)
}
