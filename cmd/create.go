package cmd

import (
	"fmt"

	"github.com/0glabs/zk-cli/common"
	"github.com/0glabs/zk-cli/namespace"
	"github.com/0glabs/zk-cli/node"
	"github.com/spf13/cobra"
)

var (
	createArgs struct {
		modes []string
	}

	createCmd = &cobra.Command{
		Use:   "create <path> [content]",
		Short: "Create a new node",
		Long: `Create a new node with the content of stdin or argv.

Nodes are persistent by default. An ephemeral node is deleted when the cli
exits. Sequential nodes get a counter appended to their name, the created
path is printed. Anyone is allowed to do anything on the new node.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: create,
	}
)

func init() {
	// no mode given resolves to persistent
	createCmd.Flags().StringSliceVar(&createArgs.modes, "mode", nil, "Creation mode, any of persistent, ephemeral, sequential; repeat or separate with commas (default persistent)")

	rootCmd.AddCommand(createCmd)
}

func create(cmd *cobra.Command, args []string) error {
	path := normalize(args[0])

	flags, err := node.ParseModeFlags(createArgs.modes)
	if err != nil {
		return err
	}
	if _, err = node.ResolveCreateMode(flags); err != nil {
		return err
	}

	in := cmd.InOrStdin()
	content, err := readContent(args, in, isTerminal(in), false)
	if err != nil {
		return err
	}

	client, err := connect(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	created, err := namespace.NewWriter(client, common.StandardLogOption()).Create(path, content, flags)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), created)
	return err
}
