package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machine_admin/internal/models"
)

func TestPermissionService_Authorize_EditorRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a1 := f.seedAuth(t, "机器列表", "/machine/list/:page/")
	a2 := f.seedAuth(t, "添加机器", "/machine/add/")
	a3 := f.seedAuth(t, "角色列表", "/role/list/:page/")

	editor, err := f.roleSvc.Create(ctx, f.rootActor, RoleInput{Name: "editor", AuthIDs: []int64{a1.ID, a2.ID}})
	require.NoError(t, err)
	bob := f.seedAdmin(t, "bob", "bobpass1", editor.ID)

	assert.NoError(t, f.permSvc.Authorize(ctx, bob.ID, a1.URL))
	assert.NoError(t, f.permSvc.Authorize(ctx, bob.ID, a2.URL))
	assert.ErrorIs(t, f.permSvc.Authorize(ctx, bob.ID, a3.URL), ErrNotFound)

	// 完全匹配，不做前缀匹配
	assert.ErrorIs(t, f.permSvc.Authorize(ctx, bob.ID, "/machine/"), ErrNotFound)
	assert.ErrorIs(t, f.permSvc.Authorize(ctx, bob.ID, "/machine/list/1/"), ErrNotFound)

	urls, err := f.permSvc.AllowedRoutes(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a1.URL, a2.URL}, urls)
}

func TestPermissionService_Authorize_UnknownAdmin(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.permSvc.Authorize(context.Background(), 12345, "/machine/add/"), ErrNotFound)
}

func TestPermissionService_Authorize_RoleWithoutAuths(t *testing.T) {
	f := newFixture(t)

	// root-role 没有任何权限
	assert.ErrorIs(t, f.permSvc.Authorize(context.Background(), f.root.ID, "/machine/add/"), ErrNotFound)
}

func TestPermissionService_Delete_RemovesFromRoles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a1 := f.seedAuth(t, "机器列表", "/machine/list/:page/")
	a2 := f.seedAuth(t, "添加机器", "/machine/add/")
	role := f.seedRole(t, "editor", a1.ID, a2.ID)
	bob := f.seedAdmin(t, "bob", "bobpass1", role.ID)

	deleted, err := f.permSvc.Delete(ctx, f.rootActor, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, a1.URL, deleted.URL)

	assert.ErrorIs(t, f.permSvc.Authorize(ctx, bob.ID, a1.URL), ErrNotFound)
	assert.NoError(t, f.permSvc.Authorize(ctx, bob.ID, a2.URL))

	got, err := f.roleSvc.Get(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{a2.ID}, got.AuthIDs())
	assert.Len(t, f.oplogsLike(t, "删除权限"), 1)

	_, err = f.permSvc.Delete(ctx, f.rootActor, a1.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPermissionService_CreateAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.permSvc.Create(ctx, f.rootActor, AuthInput{Name: " 机器列表 ", URL: " /machine/list/:page/ "})
	require.NoError(t, err)
	assert.Equal(t, "机器列表", a.Name)
	assert.Equal(t, "/machine/list/:page/", a.URL)

	_, err = f.permSvc.Create(ctx, f.rootActor, AuthInput{Name: "重复", URL: "/machine/list/:page/"})
	assert.Contains(t, fieldErrors(t, err), "url")

	fields := fieldErrors(t, func() error {
		_, err := f.permSvc.Create(ctx, f.rootActor, AuthInput{})
		return err
	}())
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "url")

	// 保持原 url 只改名称不算冲突
	updated, err := f.permSvc.Update(ctx, f.rootActor, a.ID, AuthInput{Name: "机器列表页", URL: a.URL})
	require.NoError(t, err)
	assert.Equal(t, "机器列表页", updated.Name)

	_, err = f.permSvc.Update(ctx, f.rootActor, 999, AuthInput{Name: "x", URL: "/x/"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, int64(2), f.count(t, &models.Oplog{}))
}
