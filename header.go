package httpd

import "strings"

// field 单个响应头
type field struct {
	key   string
	value string
}

// Header 有序的响应头, 按写入顺序输出
type Header []field

// Add 追加一个响应头
func (h *Header) Add(key, value string) {
	*h = append(*h, field{key: key, value: value})
}

// Get 获取响应头数据
func (h Header) Get(key string) string {
	for _, f := range h {
		if f.key == key {
			return f.value
		}
	}
	return ""
}

// write 按 "key: value\r\n" 逐行写出
func (h Header) write(sb *strings.Builder) {
	for _, f := range h {
		sb.WriteString(f.key)
		sb.WriteString(": ")
		sb.WriteString(f.value)
		sb.WriteString(crlf)
	}
}
