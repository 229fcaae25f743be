package service

import (
	"os"
	"testing"

	"fotoshare-server/internal/common"
	"fotoshare-server/internal/model"
)

// 测试内容：验证上传流程——文件落盘、记录创建、默认值填充。
func TestUpload(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "alice")
	file := makeFileHeader(t, "sunset.png", pngBytes(t))

	photo, err := testPhotoService.Upload(file, "", "日落", "", owner.ID)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if photo.Title != "sunset.png" {
		t.Fatalf("期望标题回退为原始文件名，实际为 %q", photo.Title)
	}
	if photo.Visibility != model.VisibilityPrivate {
		t.Fatalf("期望默认可见性为 PRIVATE，实际为 %q", photo.Visibility)
	}
	if photo.ContentType != "image/png" {
		t.Fatalf("期望检测到 image/png，实际为 %q", photo.ContentType)
	}

	path, err := testFileService.Resolve(photo.StorageFilename)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("期望文件已写入磁盘: %v", err)
	}
}

// 测试内容：验证扩展名与真实内容不匹配时上传被拒绝。
func TestUpload_ContentMismatchRejected(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "alice")
	file := makeFileHeader(t, "fake.jpg", pngBytes(t))

	_, err := testPhotoService.Upload(file, "", "", "", owner.ID)
	assertServiceErrorCode(t, err, common.ErrorCodeValidation)
}

// 测试内容：验证不支持的扩展名被拒绝。
func TestUpload_DisallowedExtension(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "alice")
	file := makeFileHeader(t, "script.exe", []byte("MZ not an image"))

	_, err := testPhotoService.Upload(file, "", "", "", owner.ID)
	assertServiceErrorCode(t, err, common.ErrorCodeValidation)
}

// 测试内容：验证不可见照片与不存在照片统一返回 NotFound，不泄露存在性。
func TestGetPhoto_InvisibleCollapsesToNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "alice")
	stranger := createTestUser(t, gdb, "bob")
	photo := createTestPhoto(t, gdb, owner.ID, model.VisibilityPrivate)

	_, err := testPhotoService.GetPhoto(photo.ID, &stranger.ID)
	assertServiceErrorCode(t, err, common.ErrorCodeNotFound)

	_, err = testPhotoService.GetPhoto(9999, &stranger.ID)
	assertServiceErrorCode(t, err, common.ErrorCodeNotFound)

	got, err := testPhotoService.GetPhoto(photo.ID, &owner.ID)
	if err != nil {
		t.Fatalf("期望所有者可以获取照片: %v", err)
	}
	if got.ID != photo.ID {
		t.Fatalf("照片 ID 不符: %d", got.ID)
	}
}

// 测试内容：验证元数据修改要求 ADMIN 能力，READ 分享持有者被拒绝。
func TestUpdatePhoto_Authorization(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "alice")
	reader := createTestUser(t, gdb, "bob")
	manager := createTestUser(t, gdb, "carol")
	photo := createTestPhoto(t, gdb, owner.ID, model.VisibilityPrivate)

	if _, err := testShareService.Grant(photo.ID, reader.ID, model.PermissionRead, owner.ID); err != nil {
		t.Fatalf("Grant READ: %v", err)
	}
	if _, err := testShareService.Grant(photo.ID, manager.ID, model.PermissionAdmin, owner.ID); err != nil {
		t.Fatalf("Grant ADMIN: %v", err)
	}

	title := "新标题"
	_, err := testPhotoService.UpdatePhoto(photo.ID, &title, nil, reader.ID)
	assertServiceErrorCode(t, err, common.ErrorCodeForbidden)

	updated, err := testPhotoService.UpdatePhoto(photo.ID, &title, nil, manager.ID)
	if err != nil {
		t.Fatalf("期望 ADMIN 分享持有者可以修改: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("标题未更新: %q", updated.Title)
	}
}

// 测试内容：验证所有者与 ADMIN 分享持有者都可以修改可见性。
func TestChangeVisibility(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "alice")
	manager := createTestUser(t, gdb, "bob")
	photo := createTestPhoto(t, gdb, owner.ID, model.VisibilityPrivate)

	if _, err := testShareService.Grant(photo.ID, manager.ID, model.PermissionAdmin, owner.ID); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	updated, err := testPhotoService.ChangeVisibility(photo.ID, model.VisibilityPublic, manager.ID)
	if err != nil {
		t.Fatalf("ChangeVisibility: %v", err)
	}
	if updated.Visibility != model.VisibilityPublic {
		t.Fatalf("可见性未更新: %q", updated.Visibility)
	}

	// 公开后匿名立即可见
	if !testPermService.CanView(photo.ID, nil) {
		t.Fatalf("期望公开后匿名可见")
	}

	_, err = testPhotoService.ChangeVisibility(photo.ID, model.Visibility("HIDDEN"), owner.ID)
	assertServiceErrorCode(t, err, common.ErrorCodeValidation)
}

// 测试内容：验证匿名列表只含公开照片，登录用户列表含自有、公开与被分享照片。
func TestListAccessible(t *testing.T) {
	gdb := setupTestDB(t)
	alice := createTestUser(t, gdb, "alice")
	bob := createTestUser(t, gdb, "bob")
	carol := createTestUser(t, gdb, "carol")

	createTestPhoto(t, gdb, alice.ID, model.VisibilityPrivate)
	createTestPhoto(t, gdb, alice.ID, model.VisibilityPublic)
	createTestPhoto(t, gdb, bob.ID, model.VisibilityPrivate)
	bobShared := createTestPhoto(t, gdb, bob.ID, model.VisibilityPrivate)

	if _, err := testShareService.Grant(bobShared.ID, alice.ID, model.PermissionRead, bob.ID); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	anon, err := testPhotoService.ListAccessible(nil)
	if err != nil {
		t.Fatalf("匿名 ListAccessible: %v", err)
	}
	if len(anon) != 1 {
		t.Fatalf("期望匿名只见 1 张公开照片，实际为 %d", len(anon))
	}

	forAlice, err := testPhotoService.ListAccessible(&alice.ID)
	if err != nil {
		t.Fatalf("ListAccessible: %v", err)
	}
	// alice 的两张 + bob 分享的一张
	if len(forAlice) != 3 {
		t.Fatalf("期望 alice 可见 3 张，实际为 %d", len(forAlice))
	}

	forCarol, err := testPhotoService.ListAccessible(&carol.ID)
	if err != nil {
		t.Fatalf("ListAccessible: %v", err)
	}
	if len(forCarol) != 1 {
		t.Fatalf("期望 carol 只见公开照片，实际为 %d", len(forCarol))
	}
}

// 测试内容：验证只有所有者可以删除照片，ADMIN 分享持有者也不行。
func TestDeletePhoto_OwnerOnly(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "alice")
	manager := createTestUser(t, gdb, "bob")
	photo := createTestPhoto(t, gdb, owner.ID, model.VisibilityPrivate)

	if _, err := testShareService.Grant(photo.ID, manager.ID, model.PermissionAdmin, owner.ID); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	err := testPhotoService.DeletePhoto(photo.ID, manager.ID)
	assertServiceErrorCode(t, err, common.ErrorCodeForbidden)

	// 照片仍然存在
	var count int64
	if err := gdb.Model(&model.Photo{}).Where("id = ?", photo.ID).Count(&count).Error; err != nil || count != 1 {
		t.Fatalf("期望照片未被删除, count=%d err=%v", count, err)
	}

	err = testPhotoService.DeletePhoto(9999, owner.ID)
	assertServiceErrorCode(t, err, common.ErrorCodeNotFound)
}

// 测试内容：验证删除照片级联移除评论、分享与相册关联，不留孤儿。
func TestDeletePhoto_Cascades(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "alice")
	bob := createTestUser(t, gdb, "bob")
	photo := createTestPhoto(t, gdb, owner.ID, model.VisibilityPublic)
	other := createTestPhoto(t, gdb, owner.ID, model.VisibilityPublic)

	if _, err := testShareService.Grant(photo.ID, bob.ID, model.PermissionComment, owner.ID); err != nil {
		t.Fatalf("Grant: %v", err)
	}
	if _, err := testCommentaryService.AddComment(photo.ID, "好照片", bob.ID); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	album, err := testAlbumService.CreateAlbum("旅行", "", owner.ID)
	if err != nil {
		t.Fatalf("CreateAlbum: %v", err)
	}
	if err := testAlbumService.AddPhoto(album.ID, photo.ID, owner.ID); err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}
	if err := testAlbumService.AddPhoto(album.ID, other.ID, owner.ID); err != nil {
		t.Fatalf("AddPhoto other: %v", err)
	}

	if err := testPhotoService.DeletePhoto(photo.ID, owner.ID); err != nil {
		t.Fatalf("DeletePhoto: %v", err)
	}

	var comments, shares, links int64
	gdb.Model(&model.Commentary{}).Where("photo_id = ?", photo.ID).Count(&comments)
	gdb.Model(&model.Share{}).Where("photo_id = ?", photo.ID).Count(&shares)
	gdb.Model(&model.AlbumPhoto{}).Where("photo_id = ?", photo.ID).Count(&links)
	if comments != 0 || shares != 0 || links != 0 {
		t.Fatalf("期望依赖记录全部删除, comments=%d shares=%d links=%d", comments, shares, links)
	}

	// 相册本身与其他照片的关联保留
	var remaining int64
	gdb.Model(&model.AlbumPhoto{}).Where("album_id = ?", album.ID).Count(&remaining)
	if remaining != 1 {
		t.Fatalf("期望相册中其他照片关联保留，实际为 %d", remaining)
	}

	// 重复删除返回 NotFound（幂等语义）
	err = testPhotoService.DeletePhoto(photo.ID, owner.ID)
	assertServiceErrorCode(t, err, common.ErrorCodeNotFound)
}
