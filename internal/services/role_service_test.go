package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machine_admin/internal/models"
)

func TestRoleService_Create_KeepsOrderAndDedups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a1 := f.seedAuth(t, "a1", "/a1/")
	a2 := f.seedAuth(t, "a2", "/a2/")
	a3 := f.seedAuth(t, "a3", "/a3/")

	role, err := f.roleSvc.Create(ctx, f.rootActor, RoleInput{Name: "editor", AuthIDs: []int64{a3.ID, a1.ID, a3.ID, a2.ID}})
	require.NoError(t, err)

	got, err := f.roleSvc.Get(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{a3.ID, a1.ID, a2.ID}, got.AuthIDs())
	assert.Len(t, f.oplogsLike(t, "添加角色：editor"), 1)
}

func TestRoleService_Create_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.roleSvc.Create(ctx, f.rootActor, RoleInput{Name: "editor", AuthIDs: []int64{999}})
	assert.Contains(t, fieldErrors(t, err), "auths")

	_, err = f.roleSvc.Create(ctx, f.rootActor, RoleInput{Name: "root-role"})
	assert.Contains(t, fieldErrors(t, err), "name")

	_, err = f.roleSvc.Create(ctx, f.rootActor, RoleInput{Name: "   "})
	assert.Contains(t, fieldErrors(t, err), "name")

	assert.Equal(t, int64(1), f.count(t, &models.Role{}))
	assert.Zero(t, f.count(t, &models.Oplog{}))
}

func TestRoleService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a1 := f.seedAuth(t, "a1", "/a1/")
	a2 := f.seedAuth(t, "a2", "/a2/")
	role := f.seedRole(t, "editor", a1.ID)

	updated, err := f.roleSvc.Update(ctx, f.rootActor, role.ID, RoleInput{Name: "writer", AuthIDs: []int64{a2.ID, a1.ID}})
	require.NoError(t, err)
	assert.Equal(t, "writer", updated.Name)
	assert.Equal(t, []int64{a2.ID, a1.ID}, updated.AuthIDs())

	// 只改名称，权限保持
	updated, err = f.roleSvc.Update(ctx, f.rootActor, role.ID, RoleInput{Name: "writer2", AuthIDs: []int64{a2.ID, a1.ID}})
	require.NoError(t, err)
	assert.Equal(t, []int64{a2.ID, a1.ID}, updated.AuthIDs())

	// 清空权限
	updated, err = f.roleSvc.Update(ctx, f.rootActor, role.ID, RoleInput{Name: "writer2"})
	require.NoError(t, err)
	assert.Empty(t, updated.AuthIDs())

	_, err = f.roleSvc.Update(ctx, f.rootActor, 999, RoleInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.roleSvc.Update(ctx, f.rootActor, role.ID, RoleInput{Name: "root-role"})
	assert.Contains(t, fieldErrors(t, err), "name")
}

func TestRoleService_Delete_RejectedWhileInUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a1 := f.seedAuth(t, "a1", "/a1/")
	role := f.seedRole(t, "editor", a1.ID)
	bob := f.seedAdmin(t, "bob", "bobpass1", role.ID)

	_, err := f.roleSvc.Delete(ctx, f.rootActor, role.ID)
	assert.ErrorIs(t, err, ErrRoleInUse)

	// 角色仍在，管理员列表与权限校验不受影响
	_, err = f.roleSvc.Get(ctx, role.ID)
	require.NoError(t, err)
	page, err := f.adminSvc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	for _, a := range page.Items {
		if a.ID == bob.ID {
			assert.Equal(t, "editor", a.Role.Name)
		}
	}
	assert.NoError(t, f.permSvc.Authorize(ctx, bob.ID, "/a1/"))
	assert.Zero(t, f.count(t, &models.Oplog{}))
}

func TestRoleService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a1 := f.seedAuth(t, "a1", "/a1/")
	role := f.seedRole(t, "editor", a1.ID)

	deleted, err := f.roleSvc.Delete(ctx, f.rootActor, role.ID)
	require.NoError(t, err)
	assert.Equal(t, "editor", deleted.Name)

	_, err = f.roleSvc.Get(ctx, role.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, f.count(t, &models.RoleAuth{}))
	assert.Len(t, f.oplogsLike(t, "删除角色：editor"), 1)

	_, err = f.roleSvc.Delete(ctx, f.rootActor, role.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
