package httpd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	indexPath    = "./index.html"
	notFoundPage = "not_found.html"
)

// ContentType 可以提供的两种文件类型
type ContentType int

const (
	HTML ContentType = iota
	Plain
)

func (c ContentType) String() string {
	if c == Plain {
		return "text/plain"
	}
	return "text/html"
}

var extensions = map[string]ContentType{
	"html": HTML,
	"txt":  Plain,
}

// File 解析出来准备返回的文件
type File struct {
	Path        string
	ContentType ContentType
	Body        []byte
}

// FileServer 从 Root 目录读取 .html 和 .txt 文件
type FileServer struct {
	Root   string
	Logger zerolog.Logger
}

// NewFileServer 创建一个以 root 为根目录的 FileServer
func NewFileServer(root string, logger zerolog.Logger) *FileServer {
	if root == "" {
		root = "."
	}
	return &FileServer{Root: root, Logger: logger}
}

// Resolve 将 "./name.ext" 形式的路径解析成文件.
// 文件不存在时返回 FileNotFound, 调用方改用 NotFoundPage.
func (s *FileServer) Resolve(target string) (*File, error) {
	if target == rootMarker+"/" {
		target = indexPath
	}
	ct, err := contentTypeOf(target)
	if err != nil {
		return nil, err
	}
	body, err := os.ReadFile(s.join(target))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, newRequestError(FileNotFound, target, err)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}
	return &File{Path: target, ContentType: ct, Body: body}, nil
}

// NotFoundPage 读取 404 页面
func (s *FileServer) NotFoundPage() (*File, error) {
	body, err := os.ReadFile(s.join(notFoundPage))
	if err != nil {
		return nil, fmt.Errorf("read fallback page: %w", err)
	}
	return &File{Path: rootMarker + "/" + notFoundPage, ContentType: HTML, Body: body}, nil
}

func (s *FileServer) join(target string) string {
	return filepath.Join(s.Root, filepath.FromSlash(target))
}

// contentTypeOf 取路径按 "." 分割后的第三段作为扩展名.
// 路径必须恰好是 "./name.ext" 这样的两段, 目录名或文件名里带 "." 都不支持.
func contentTypeOf(target string) (ContentType, error) {
	segments := strings.Split(target, ".")
	if len(segments) < 3 {
		return 0, newRequestError(MalformedRequest, target, nil)
	}
	if len(segments) > 3 {
		return 0, newRequestError(UnsupportedFileType, target, nil)
	}
	ct, ok := extensions[segments[2]]
	if !ok {
		return 0, newRequestError(UnsupportedFileType, target, nil)
	}
	return ct, nil
}
