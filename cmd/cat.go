package cmd

import (
	"github.com/0glabs/zk-cli/namespace"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	catArgs struct {
		binary bool
	}

	catCmd = &cobra.Command{
		Use:     "cat <path>",
		Aliases: []string{"bat"},
		Short:   "Print the content of a node",
		Args:    cobra.ExactArgs(1),
		RunE:    cat,
	}
)

func init() {
	catCmd.Flags().BoolVarP(&catArgs.binary, "binary", "b", false, "Write the raw payload to stdout")

	rootCmd.AddCommand(catCmd)
}

func cat(cmd *cobra.Command, args []string) error {
	path := normalize(args[0])

	client, err := connect(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	err = namespace.NewReader(client).Cat(cmd.OutOrStdout(), path, catArgs.binary)
	if errors.Is(err, namespace.ErrNotUTF8) {
		return errors.WithMessage(err, "to output the binary data use `-b` or `--binary`")
	}
	return err
}
