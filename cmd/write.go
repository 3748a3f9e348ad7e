package cmd

import (
	"github.com/0glabs/zk-cli/common"
	"github.com/0glabs/zk-cli/namespace"
	"github.com/spf13/cobra"
)

var (
	writeArgs struct {
		force bool
	}

	writeCmd = &cobra.Command{
		Use:     "write <path> [content]",
		Aliases: []string{"set"},
		Short:   "Write the content of stdin or argv to the specified path",
		Long: `Write the content of stdin or argv to the specified path.

The node must already exist, see the create command to create a new node.
With --force a missing node is created as persistent, and running without
content resets the node to an empty payload.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: write,
	}
)

func init() {
	writeCmd.Flags().BoolVarP(&writeArgs.force, "force", "f", false, "Create the node as persistent if it does not exist")

	rootCmd.AddCommand(writeCmd)
}

func write(cmd *cobra.Command, args []string) error {
	path := normalize(args[0])

	in := cmd.InOrStdin()
	content, err := readContent(args, in, isTerminal(in), !writeArgs.force)
	if err != nil {
		return err
	}

	client, err := connect(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	return namespace.NewWriter(client, common.StandardLogOption()).Write(path, content, writeArgs.force)
}
