package cmd

import (
	"github.com/0glabs/zk-cli/common"
	"github.com/0glabs/zk-cli/namespace"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rmArgs struct {
		recursive bool
		strict    bool
	}

	rmCmd = &cobra.Command{
		Use:     "rm <path>...",
		Aliases: []string{"rmdir"},
		Short:   "Remove nodes",
		Long: `Remove nodes.

Every path is removed in turn. A path that cannot be removed is reported and
the remaining paths are still processed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: rm,
	}
)

func init() {
	rmCmd.Flags().BoolVarP(&rmArgs.recursive, "recursive", "r", false, "Remove every descendant before the node itself")
	rmCmd.Flags().BoolVar(&rmArgs.strict, "strict", false, "With --recursive, fail when a descendant is removed by someone else in the meantime")

	rootCmd.AddCommand(rmCmd)
}

func rm(cmd *cobra.Command, args []string) error {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		paths = append(paths, normalize(arg))
	}

	client, err := connect(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	option := namespace.DeleterOption{Strict: rmArgs.strict}
	deleter := namespace.NewDeleter(client, option, common.StandardLogOption())
	if failed := deleter.DeleteMany(paths, rmArgs.recursive); failed > 0 {
		logrus.WithFields(logrus.Fields{
			"failed": failed,
			"total":  len(paths),
		}).Warn("Some paths were not removed")
	}

	return nil
}
