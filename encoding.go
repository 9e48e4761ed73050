package httpd

import (
	"golang.org/x/text/encoding/charmap"
)

// 请求和响应头一律按 ISO-8859-1 处理, 每个字节对应一个字符

// decodeLatin1 将收到的字节解码成文本
func decodeLatin1(p []byte) (string, error) {
	b, err := charmap.ISO8859_1.NewDecoder().Bytes(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// encodeLatin1 将文本编码回单字节序列
func encodeLatin1(s string) ([]byte, error) {
	return charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
}
