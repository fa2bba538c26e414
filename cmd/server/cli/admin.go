package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/repositories"
	"github.com/machine_admin/internal/services"
	"github.com/machine_admin/pkg/db"
	"github.com/machine_admin/pkg/utils"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "管理员账号",
	}
	cmd.AddCommand(newAdminCreateCmd())
	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var (
		name     string
		roleName string
		password string
		isSuper  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "创建管理员，角色不存在时一并创建",
		Example: `  machine-admin admin create --name admin --role-name 超级管理员 --super
  machine-admin admin create --name bob --role-name editor --password secret123`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				p, err := promptPassword(true)
				if err != nil {
					return err
				}
				password = p
			}

			gdb, err := openDB()
			if err != nil {
				return err
			}
			defer db.CloseDB()

			admin, err := createAdmin(cmd.Context(), gdb, name, roleName, password, isSuper)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %q (id=%d, role=%q)\n", admin.Name, admin.ID, roleName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "管理员名称 (required)")
	cmd.Flags().StringVar(&roleName, "role-name", "", "所属角色名称 (required)")
	cmd.Flags().StringVar(&password, "password", "", "密码 (prompted if omitted)")
	cmd.Flags().BoolVar(&isSuper, "super", false, "标记为超级管理员")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role-name")

	return cmd
}

// createAdmin 初始化管理员。命令行没有操作人，因此不写操作日志
func createAdmin(ctx context.Context, gdb *gorm.DB, name, roleName, password string, isSuper bool) (*models.Admin, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	roleRepo := repositories.NewGormRoleRepository(gdb)
	adminRepo := repositories.NewGormAdminRepository(gdb)

	roleName = utils.NormalizeName(roleName)
	if roleName == "" {
		return nil, fmt.Errorf("role name is required")
	}
	role, err := roleRepo.GetByName(ctx, roleName)
	if errors.Is(err, repositories.ErrRecordNotFound) {
		role = &models.Role{Name: roleName}
		if err := roleRepo.Create(ctx, role, nil); err != nil {
			return nil, fmt.Errorf("create role %q: %w", roleName, err)
		}
	} else if err != nil {
		return nil, err
	}

	admins := services.NewAdminService(gdb, adminRepo, roleRepo,
		repositories.NewGormMachineRepository(gdb),
		services.NewAuditService(repositories.NewGormLogRepository(gdb)))
	return admins.Create(ctx, services.Actor{}, services.CreateAdminInput{
		Name:    name,
		Pwd:     password,
		RePwd:   password,
		RoleID:  role.ID,
		IsSuper: isSuper,
	})
}
