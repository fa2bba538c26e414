package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/machine_admin/configs"
	"github.com/machine_admin/pkg/logger"
)

var cfgFile string

// Execute creates the root command tree and runs it.
func Execute(version string) error {
	defer logger.Sync()
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	serve := newServeCmd()
	cmd := &cobra.Command{
		Use:     "machine-admin",
		Short:   "机器管理后台",
		Long:    "服务端渲染的机器管理后台：管理员登录、角色权限、机器/机房/平台管理与操作日志。",
		Version: version,
		// 不带子命令时直接启动服务
		RunE:          serve.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.LoadConfig(cfgFile)
			logger.Init(logger.Config{
				Level:       configs.AppConfig.LogLevel,
				Format:      configs.AppConfig.LogFormat,
				ServiceName: "machine-admin",
			})
			gin.SetMode(configs.AppConfig.GinMode)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./machine_admin.yaml)")

	cmd.AddCommand(serve)
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newAdminCmd())
	cmd.AddCommand(newHashPasswordCmd())

	return cmd
}
