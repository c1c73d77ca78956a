package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewExportCommand 创建 export 命令：输出全量同步快照 JSON
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:          "export",
		Short:        "导出全部数据为 JSON",
		Long:         "导出与 GET /api/sync/all 相同结构的快照，默认写到标准输出。",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			snap, err := app.Service.Sync.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("创建输出文件失败: %w", err)
				}
				defer f.Close()
				w = f
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(snap); err != nil {
				return fmt.Errorf("写入快照失败: %w", err)
			}

			if out != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "已导出 %d 名干部到 %s\n", len(snap.Cadres), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "输出文件路径（默认标准输出）")
	return cmd
}
