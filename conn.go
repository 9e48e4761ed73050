package httpd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/rs/zerolog"
)

type conn struct {
	svc *Server        // server对象
	rwc net.Conn       // tcp 连接
	bw  *bufio.Writer  // 缓存写入
	log zerolog.Logger
}

func newConn(svc *Server, rwc net.Conn) *conn {
	return &conn{
		svc: svc,
		rwc: rwc,
		bw:  bufio.NewWriter(rwc),
		log: svc.Logger,
	}
}

// serve 每个连接只处理一个请求, 处理完立刻关闭
func (c *conn) serve() {
	defer func() {
		// 处理错误, 不影响其它连接
		if err := recover(); err != nil {
			c.log.Error().Msgf("http: panic serving: %v", err)
		}
		// 关闭tcp连接
		c.close()
	}()
	c.log.Info().Msgf("Got connection %s", c.rwc.RemoteAddr())

	text, err := c.readRequest()
	if err != nil {
		c.handleErr(err)
		return
	}
	resp, err := c.svc.handler().Respond(text)
	if err != nil {
		c.handleErr(err)
		return
	}
	if err := c.writeResponse(resp); err != nil {
		c.handleErr(err)
		return
	}
	c.log.Debug().Str("status", resp.StatusLine).Str("length", resp.Header.Get("Content-Length")).Msg("response sent")
}

// readRequest 只读一次, 请求行和请求头必须在这一次里全部到达
func (c *conn) readRequest() (string, error) {
	if d := c.svc.ReadTimeout; d > 0 {
		if err := c.rwc.SetReadDeadline(time.Now().Add(d)); err != nil {
			return "", fmt.Errorf("set read deadline: %w", err)
		}
	}
	buf := make([]byte, c.svc.readSize())
	n, err := c.rwc.Read(buf)
	// 对端直接关闭时按空请求处理, 由解析器给出 400
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read request: %w", err)
	}
	return decodeLatin1(buf[:n])
}

// writeResponse 写出完整的响应报文
func (c *conn) writeResponse(resp *Response) error {
	p, err := resp.Bytes()
	if err != nil {
		return err
	}
	if _, err := c.bw.Write(p); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if err := c.bw.Flush(); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// handleErr 错误处理, 连接直接关闭不再响应
func (c *conn) handleErr(err error) {
	c.log.Error().Err(err).Msg("Dropping connection")
}

// close 关闭连接
func (c *conn) close() {
	// 关闭tcp连接
	_ = c.rwc.Close()
}
