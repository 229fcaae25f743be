package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SecureJoin 将相对路径安全拼接到 basePath 下。
//
// 说明：
// 禁止传入绝对路径，避免绕过基目录。
// 规范化并校验相对路径，拒绝 ".." 越界。
// 检查链路中已存在的节点是否为符号链接，防止 symlink 穿透。
//
// 返回值为目标的绝对路径，可直接用于后续文件读写。
func SecureJoin(basePath, relativePath string) (string, error) {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}

	cleanRel := filepath.Clean(relativePath)
	if cleanRel == "." {
		cleanRel = ""
	}
	if filepath.IsAbs(cleanRel) {
		return "", fmt.Errorf("非法路径: 不允许绝对路径")
	}

	targetAbs, err := filepath.Abs(filepath.Join(baseAbs, cleanRel))
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}

	if err := ensureWithinBase(baseAbs, targetAbs); err != nil {
		return "", err
	}

	// 从目标路径逐级向上回溯到基目录，已存在的节点不能是符号链接。
	// 不存在的节点不报错，便于“即将创建”的场景。
	current := targetAbs
	for {
		info, statErr := os.Lstat(current)
		if statErr == nil {
			if info.Mode()&os.ModeSymlink != 0 {
				return "", fmt.Errorf("检测到符号链接穿透风险: %s", current)
			}
		} else if !os.IsNotExist(statErr) {
			return "", fmt.Errorf("检查路径失败: %w", statErr)
		}

		if current == baseAbs {
			break
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return targetAbs, nil
}

func ensureWithinBase(baseAbs, targetAbs string) error {
	if targetAbs == baseAbs {
		return nil
	}
	prefix := baseAbs + string(os.PathSeparator)
	if !strings.HasPrefix(targetAbs, prefix) {
		return fmt.Errorf("非法路径: 目标越出基目录")
	}
	return nil
}
