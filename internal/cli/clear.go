package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewClearCommand 创建 clear 命令：清空全部数据
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:          "clear",
		Short:        "清除所有数据",
		Long:         "删除全部干部及子记录并重置自增编号。必须加 --yes 确认。",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("清除操作不可恢复，请加 --yes 确认")
			}

			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Service.Sync.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "所有数据已清除")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "确认清除")
	return cmd
}
