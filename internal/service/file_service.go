package service

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fotoshare-server/internal/config"
	"fotoshare-server/internal/utils"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

// FileStore 文件存储协作方。记录一致性是强制的，文件清理是尽力而为的：
// Delete 只返回是否成功，调用方记录失败日志但不中断记录删除。
type FileStore interface {
	Save(file *multipart.FileHeader, ext string) (string, error)
	Resolve(reference string) (string, error)
	Delete(reference string) bool
}

// FileService 本地磁盘文件存储，文件按日期目录存放、UUID 命名。
type FileService struct {
	root string
}

func NewFileService(root string) *FileService {
	if root == "" {
		root = config.Get().Upload.Path
	}
	if root == "" {
		root = "uploads/photos"
	}
	return &FileService{root: root}
}

// Save 将上传文件写入磁盘，返回相对存储引用（如 2026/08/27/uuid.jpg）。
func (s *FileService) Save(file *multipart.FileHeader, ext string) (string, error) {
	now := time.Now()
	datePath := filepath.Join(now.Format("2006"), now.Format("01"), now.Format("02"))

	fullDir, err := utils.SecureJoin(s.root, datePath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(fullDir, 0755); err != nil {
		return "", fmt.Errorf("无法创建存储目录: %w", err)
	}

	// 生成唯一文件名
	newFilename := uuid.New().String() + ext
	dst := filepath.Join(fullDir, newFilename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("无法打开上传的文件: %w", err)
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("无法创建目标文件: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("写入文件失败: %w", err)
	}

	reference := filepath.ToSlash(filepath.Join(datePath, newFilename))

	// 缩略图生成失败不影响上传本身
	if err := s.generateThumbnail(dst); err != nil {
		log.Printf("⚠️ 缩略图生成失败 (%s): %v", reference, err)
	}

	return reference, nil
}

// Resolve 将存储引用解析为磁盘绝对路径。
func (s *FileService) Resolve(reference string) (string, error) {
	return utils.SecureJoin(s.root, filepath.FromSlash(reference))
}

// Delete 删除存储的文件及其缩略图。尽力而为：返回 false 时由调用方记录日志。
func (s *FileService) Delete(reference string) bool {
	path, err := s.Resolve(reference)
	if err != nil {
		return false
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return false
	}
	if thumb := thumbnailPath(path); thumb != "" {
		_ = os.Remove(thumb)
	}
	return true
}

// generateThumbnail 在原图旁生成定宽 JPEG 缩略图。
func (s *FileService) generateThumbnail(path string) error {
	width := config.Get().Upload.ThumbnailWidth
	if width <= 0 {
		width = 320
	}

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	img, _, err := image.Decode(in)
	if err != nil {
		return err
	}

	thumb := resize.Resize(uint(width), 0, img, resize.Lanczos3)

	out, err := os.Create(thumbnailPath(path))
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	return jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
}

func thumbnailPath(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	if base == "" {
		return ""
	}
	return base + "_thumb.jpg"
}
