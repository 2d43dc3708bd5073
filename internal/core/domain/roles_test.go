package domain

import "testing"

func TestRole_Valid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleUser.Valid() {
		t.Fatalf("known roles must be valid")
	}
	if Role("superuser").Valid() {
		t.Fatalf("unknown role must be invalid")
	}
}

func TestRole_Permissions(t *testing.T) {
	if !RoleAdmin.Has(PermAdminAccess) || !RoleAdmin.Has(PermUsersDelete) {
		t.Fatalf("admin missing expected permissions")
	}
	if RoleUser.Has(PermAdminAccess) {
		t.Fatalf("user must not have admin access")
	}
	if !RoleUser.Has(PermProfileUpdate) {
		t.Fatalf("user must be able to update own profile")
	}
	if Role("superuser").Has(PermProfileRead) {
		t.Fatalf("unknown role grants nothing")
	}
}
