package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/machine_admin/pkg/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "创建或更新数据库表结构后退出",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := openDB(); err != nil {
				return err
			}
			defer db.CloseDB()
			fmt.Println("数据库表结构已是最新")
			return nil
		},
	}
}
