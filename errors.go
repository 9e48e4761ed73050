package httpd

import (
	"errors"
	"fmt"
)

// ErrorKind 请求处理失败的类别
type ErrorKind int

const (
	MalformedRequest ErrorKind = iota
	UnsupportedMethod
	UnsupportedFileType
	FileNotFound
)

func (k ErrorKind) Error() string {
	switch k {
	case MalformedRequest:
		return "malformed request"
	case UnsupportedMethod:
		return "unsupported request method"
	case UnsupportedFileType:
		return "unsupported file format"
	case FileNotFound:
		return "file not found"
	default:
		return fmt.Sprintf("unknown request error: %d", int(k))
	}
}

// RequestError 带类别标签的请求错误
type RequestError struct {
	Kind       ErrorKind
	Detail     string // 出错的方法名或路径
	underlying error
}

func newRequestError(kind ErrorKind, detail string, underlying error) *RequestError {
	return &RequestError{Kind: kind, Detail: detail, underlying: underlying}
}

func (e *RequestError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Detail)
	}
	if e.underlying != nil {
		msg = fmt.Sprintf("%s (underlying: %v)", msg, e.underlying)
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	return e.underlying
}

// Is 使 errors.Is(err, UnsupportedMethod) 这类判断可以穿透包装
func (e *RequestError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

// KindOf 取出错误链上的类别标签
func KindOf(err error) (ErrorKind, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return 0, false
}
