package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
)

// NewPasswordCommand 创建 password 命令组
func NewPasswordCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "查看或修改管理员密码",
	}

	cmd.AddCommand(&cobra.Command{
		Use:          "get",
		Short:        "输出当前管理员密码",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			pw, err := app.Service.Setting.GetPassword(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pw)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:          "set <password>",
		Short:        "修改管理员密码",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Service.Setting.SetPassword(cmd.Context(), &dto.UpdatePasswordRequest{Password: args[0]}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "密码更新成功")
			return nil
		},
	})

	return cmd
}
