package httpd

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBacklog  = 4
	defaultReadSize = 1024

	acceptRetryDelay = 5 * time.Millisecond
)

type Server struct {
	Host        string        // 监听地址
	Port        int           // 监听端口, 0 表示由系统分配
	Backlog     int           // 等待 accept 的连接上限
	ReadSize    int           // 单次读取请求的字节数上限
	ReadTimeout time.Duration // 读取请求的超时, 0 表示不限
	Handler     Handler       // 为空时不能提供服务
	Logger      zerolog.Logger
}

// New 根据配置创建 Server, 默认使用 FileServer 处理请求
func New(cfg Config, logger zerolog.Logger) *Server {
	return &Server{
		Host:        cfg.Host,
		Port:        cfg.Port,
		Backlog:     cfg.Backlog,
		ReadSize:    cfg.ReadSize,
		ReadTimeout: cfg.ReadTimeout,
		Handler:     NewFileServer(cfg.Root, logger),
		Logger:      logger,
	}
}

// Addr 监听的 host:port
func (svc *Server) Addr() string {
	return net.JoinHostPort(svc.Host, strconv.Itoa(svc.Port))
}

// ListenAndServe 绑定端口并开始服务, ctx 取消后返回
func (svc *Server) ListenAndServe(ctx context.Context) error {
	backlog := svc.Backlog
	if backlog <= 0 {
		backlog = defaultBacklog
	}
	l, err := listen(svc.Addr(), backlog)
	if err != nil {
		return err
	}
	svc.Logger.Info().Str("addr", l.Addr().String()).Msgf("Starting http server on port %d", portOf(l.Addr()))
	return svc.Serve(ctx, l)
}

// Serve 不断接受新连接, 每个连接交给一个新协程处理, 不等待其结束
func (svc *Server) Serve(ctx context.Context, l net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		_ = l.Close()
	})
	defer stop()
	defer l.Close()

	for {
		// 不断的监听新的连接
		accept, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			svc.Logger.Error().Err(err).Msg("accept failed")
			time.Sleep(acceptRetryDelay)
			continue
		}
		// 开启一个新协程处理连接
		c := newConn(svc, accept)
		go c.serve()
	}
}

func (svc *Server) handler() Handler {
	if svc.Handler == nil {
		panic("httpd: server has no handler")
	}
	return svc.Handler
}

func (svc *Server) readSize() int {
	if svc.ReadSize <= 0 {
		return defaultReadSize
	}
	return svc.ReadSize
}

func portOf(addr net.Addr) int {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}
