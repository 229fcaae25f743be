package model

// Visibility 照片可见性：PRIVATE 仅所有者与被分享者可见，PUBLIC 任何人可见。
type Visibility string

const (
	VisibilityPrivate Visibility = "PRIVATE"
	VisibilityPublic  Visibility = "PUBLIC"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPrivate || v == VisibilityPublic
}

// Permission 分享权限等级，严格有序：READ < COMMENT < ADMIN。
type Permission string

const (
	PermissionRead    Permission = "READ"
	PermissionComment Permission = "COMMENT"
	PermissionAdmin   Permission = "ADMIN"
)

var permissionRank = map[Permission]int{
	PermissionRead:    1,
	PermissionComment: 2,
	PermissionAdmin:   3,
}

func (p Permission) Valid() bool {
	_, ok := permissionRank[p]
	return ok
}

// Satisfies 判断当前持有的权限是否满足要求的权限（held >= required）。
func (p Permission) Satisfies(required Permission) bool {
	return permissionRank[p] >= permissionRank[required]
}
