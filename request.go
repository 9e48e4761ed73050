package httpd

import (
	"strings"
)

const (
	crlf       = "\r\n"
	headerEnd  = crlf + crlf
	rootMarker = "."
)

// Request 解析后的请求行
type Request struct {
	Method string // 请求方法
	Target string // 以 "." 开头的文件路径, 相对于站点根目录
}

// ParseRequest 从请求文本中解析出方法和目标路径.
// 只看请求行, 其余请求头和请求体都会被忽略.
func ParseRequest(text string) (*Request, error) {
	// 请求头以空行结束, 后面的主体不读
	end := strings.Index(text, headerEnd)
	if end == -1 {
		return nil, newRequestError(MalformedRequest, "", nil)
	}
	lines := strings.Split(text[:end], crlf)
	startLine := lines[0]
	if startLine == "" {
		return nil, newRequestError(MalformedRequest, "", nil)
	}
	sep := strings.IndexByte(startLine, '/')
	if sep == -1 {
		return nil, newRequestError(MalformedRequest, startLine, nil)
	}
	r := &Request{
		Method: strings.TrimSpace(startLine[:sep]),
		// startLine[sep:] 以 '/' 开头, 至少有一个字段
		Target: rootMarker + strings.Fields(startLine[sep:])[0],
	}
	if r.Method != "GET" {
		return nil, newRequestError(UnsupportedMethod, r.Method, nil)
	}
	return r, nil
}
