package analyze

import "errors"

var (
	// ErrPathNotFound 分析的根路径不存在
	ErrPathNotFound = errors.New("path not found")

	// ErrUnsupportedLanguage 文件后缀未映射到任何受支持的语言
	// 目录模式下此类文件被静默跳过，仅单文件模式下作为错误返回
	ErrUnsupportedLanguage = errors.New("unsupported file extension")

	// ErrUnreadableFile 文件无法打开或读取
	// 目录模式下记录为单文件失败并继续，单文件模式下直接返回
	ErrUnreadableFile = errors.New("unreadable file")
)
