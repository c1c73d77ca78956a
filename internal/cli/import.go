package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
)

// NewImportCommand 创建 import 命令：以单个事务批量写入快照文件
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:          "import",
		Short:        "从 JSON 快照批量导入",
		Long:         "读取 export 生成的快照并按主键覆盖写入，任一行失败则整批回滚。",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("读取快照文件失败: %w", err)
			}

			var req dto.SyncUploadRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("解析快照文件失败: %w", err)
			}

			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.Service.Sync.Upload(cmd.Context(), &req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"数据同步成功: 干部 %d, 比赛成绩 %d, 协会贡献 %d, 新生指导 %d, 职责扣分 %d\n",
				result.Cadres, result.Competitions, result.Contributions, result.Trainings, result.Deductions)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "快照文件路径")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
