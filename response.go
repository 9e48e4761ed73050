package httpd

import (
	"fmt"
	"strconv"
	"strings"
)

// Outcome 响应的结果类别
type Outcome int

const (
	OK Outcome = iota
	NotFound
	BadRequest
)

var statusLines = map[Outcome]string{
	OK:         "HTTP/1.1 200 OK",
	NotFound:   "HTTP/1.1 404 Not Found",
	BadRequest: "HTTP/1.1 400 Bad Request",
}

func (o Outcome) String() string {
	return statusLines[o]
}

// Response 完整的响应报文
type Response struct {
	StatusLine string
	Header     Header
	Body       []byte
}

// Build 根据结果类别构造响应.
// 400 响应既没有响应头也没有主体; 404 总是 text/html.
func Build(outcome Outcome, ct ContentType, body []byte) *Response {
	resp := &Response{StatusLine: outcome.String()}
	switch outcome {
	case OK:
	case NotFound:
		ct = HTML
	default:
		resp.StatusLine = BadRequest.String()
		return resp
	}
	resp.Header.Add("Content-Type", ct.String())
	resp.Header.Add("Content-Length", strconv.Itoa(len(body)))
	resp.Header.Add("Connection", "close")
	resp.Body = body
	return resp
}

// Bytes 序列化响应. 状态行和响应头按 ISO-8859-1 编码, 主体原样输出.
func (r *Response) Bytes() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(r.StatusLine)
	sb.WriteString(crlf)
	r.Header.write(&sb)
	sb.WriteString(crlf)
	head, err := encodeLatin1(sb.String())
	if err != nil {
		return nil, fmt.Errorf("encode response head: %w", err)
	}
	return append(head, r.Body...), nil
}
