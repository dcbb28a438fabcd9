package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleEmployee.Valid())
	assert.False(t, Role("manager").Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("Admin").Valid())
}

func TestAction_Valid(t *testing.T) {
	for _, a := range Actions {
		assert.True(t, a.Valid(), a)
	}
	assert.False(t, ActionAll.Valid())
	assert.False(t, Action("create").Valid())
}

func TestUser_SessionUser(t *testing.T) {
	u := User{ID: "u1", Email: "a@x.io", Name: "Ann", Role: RoleAdmin, PasswordHash: "secret", Photo: "p"}

	su := u.SessionUser()

	assert.Equal(t, SessionUser{ID: "u1", Email: "a@x.io", Name: "Ann", Role: RoleAdmin, Photo: "p"}, su)
	assert.True(t, su.IsAdmin())
}

func TestUser_JSONFieldNames(t *testing.T) {
	u := User{ID: "u1", Email: "a@x.io", PasswordHash: "h", CreatedAt: time.Unix(0, 0).UTC()}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "passwordHash")
	assert.Contains(t, raw, "createdAt")
	assert.Contains(t, raw, "updatedAt")
}

func TestSession_JSONShape(t *testing.T) {
	s := Session{User: SessionUser{ID: "u1"}, Token: "t", LoginTime: time.Unix(0, 0).UTC()}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "user")
	assert.Contains(t, raw, "token")
	assert.Contains(t, raw, "loginTime")
}

func TestActivityLog_NullEmployeeID(t *testing.T) {
	data, err := json.Marshal(ActivityLog{ID: "log1", Action: ActionLogin})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"employeeId":null`)
}

func TestUserPatch_Apply(t *testing.T) {
	name := "New"
	role := RoleAdmin
	now := time.Now().UTC()
	u := User{ID: "u1", Name: "Old", Email: "a@x.io", Role: RoleEmployee}

	patched := UserPatch{Name: &name, Role: &role, UpdatedAt: &now}.Apply(u)

	assert.Equal(t, "New", patched.Name)
	assert.Equal(t, "a@x.io", patched.Email)
	assert.Equal(t, RoleAdmin, patched.Role)
	assert.Equal(t, now, patched.UpdatedAt)
	assert.Equal(t, "Old", u.Name, "original must not change")
}

func TestUserPatch_IsEmpty(t *testing.T) {
	assert.True(t, UserPatch{}.IsEmpty())
	photo := ""
	assert.False(t, UserPatch{Photo: &photo}.IsEmpty())
}

func TestDefaultListingQuery(t *testing.T) {
	q := DefaultListingQuery()
	assert.Equal(t, ListingQuery{Designation: DesignationAll, Sort: SortAsc, Page: 1}, q)
}

func TestRouteDecision_String(t *testing.T) {
	assert.Equal(t, "allow", RouteAllow.String())
	assert.Equal(t, "redirect_login", RouteRedirectLogin.String())
	assert.Equal(t, "redirect_home", RouteRedirectHome.String())
	assert.Equal(t, "unknown", RouteDecision(42).String())
}

func TestRolePermissions(t *testing.T) {
	assert.Len(t, RolePermissions[RoleAdmin], 6)
	assert.Equal(t, []Permission{PermReadEmployee}, RolePermissions[RoleEmployee])
	assert.Empty(t, RolePermissions[Role("guest")])
}

func TestNewAppBuildInfo(t *testing.T) {
	assert.Equal(t, AppBuildInfo{Version: "1.0.0", Date: "N/A", Commit: "N/A"}, NewAppBuildInfo("1.0.0", "", ""))
}
