package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/machine_admin/internal/models"
	"github.com/machine_admin/internal/repositories"
	"github.com/machine_admin/pkg/db"
	"github.com/machine_admin/pkg/utils"
)

type fixture struct {
	db *gorm.DB

	admins       repositories.AdminRepository
	roles        repositories.RoleRepository
	auths        repositories.AuthRepository
	logs         repositories.LogRepository
	machines     repositories.MachineRepository
	machinerooms repositories.CatalogRepository
	platforms    repositories.CatalogRepository

	audit        AuditService
	authSvc      AuthService
	adminSvc     AdminService
	roleSvc      RoleService
	permSvc      PermissionService
	machineSvc   MachineService
	roomSvc      CatalogService
	platformSvc  CatalogService
	root         *models.Admin
	rootActor    Actor
	rootPassword string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	d := db.OpenTest(t)
	f := &fixture{
		db:           d,
		admins:       repositories.NewGormAdminRepository(d),
		roles:        repositories.NewGormRoleRepository(d),
		auths:        repositories.NewGormAuthRepository(d),
		logs:         repositories.NewGormLogRepository(d),
		machines:     repositories.NewGormMachineRepository(d),
		machinerooms: repositories.NewGormMachineroomRepository(d),
		platforms:    repositories.NewGormPlatformRepository(d),
		rootPassword: "secret123",
	}
	f.audit = NewAuditService(f.logs)
	f.authSvc = NewAuthService(d, f.admins, f.audit)
	f.adminSvc = NewAdminService(d, f.admins, f.roles, f.machines, f.audit)
	f.roleSvc = NewRoleService(d, f.roles, f.auths, f.admins, f.audit)
	f.permSvc = NewPermissionService(d, f.auths, f.roles, f.admins, f.audit)
	f.machineSvc = NewMachineService(d, f.machines, f.machinerooms, f.platforms, f.audit)
	f.roomSvc = NewMachineroomService(d, f.machinerooms, f.machines, f.audit)
	f.platformSvc = NewPlatformService(d, f.platforms, f.machines, f.audit)

	rootRole := f.seedRole(t, "root-role")
	f.root = f.seedAdmin(t, "root", f.rootPassword, rootRole.ID)
	f.rootActor = Actor{AdminID: f.root.ID, Name: f.root.Name, IP: "127.0.0.1"}
	return f
}

func (f *fixture) seedRole(t *testing.T, name string, authIDs ...int64) *models.Role {
	t.Helper()
	role := &models.Role{Name: name}
	require.NoError(t, f.roles.Create(context.Background(), role, authIDs))
	return role
}

func (f *fixture) seedAdmin(t *testing.T, name, password string, roleID int64) *models.Admin {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	admin := &models.Admin{Name: name, Pwd: hash, RoleID: roleID}
	require.NoError(t, f.admins.Create(context.Background(), admin))
	return admin
}

func (f *fixture) seedAuth(t *testing.T, name, url string) *models.Auth {
	t.Helper()
	a := &models.Auth{Name: name, URL: url}
	require.NoError(t, f.auths.Create(context.Background(), a))
	return a
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func (f *fixture) oplogsLike(t *testing.T, pattern string) []models.Oplog {
	t.Helper()
	var logs []models.Oplog
	require.NoError(t, f.db.Where("reason LIKE ?", "%"+pattern+"%").Find(&logs).Error)
	return logs
}

// fieldErrors 断言 err 为 ValidationError 并返回字段错误
func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}
