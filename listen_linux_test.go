//go:build linux

package httpd

import (
	"net"
	"testing"

	"golang.org/x/sys/unix"
)

func TestListen_Backlog(t *testing.T) {
	l, err := listen("127.0.0.1:0", defaultBacklog)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()

	raw, err := l.(*net.TCPListener).SyscallConn()
	if err != nil {
		t.Fatalf("SyscallConn: %v", err)
	}
	var (
		info    *unix.TCPInfo
		infoErr error
	)
	if err := raw.Control(func(fd uintptr) {
		info, infoErr = unix.GetsockoptTCPInfo(int(fd), unix.IPPROTO_TCP, unix.TCP_INFO)
	}); err != nil {
		t.Fatalf("Control: %v", err)
	}
	if infoErr != nil {
		t.Fatalf("getsockopt TCP_INFO: %v", infoErr)
	}
	// 监听状态下 tcpi_sacked 是 backlog 上限, tcpi_unacked 是当前排队数
	if info.Sacked != defaultBacklog {
		t.Errorf("backlog = %d, want %d", info.Sacked, defaultBacklog)
	}
	if info.Unacked != 0 {
		t.Errorf("accept queue = %d, want 0", info.Unacked)
	}
}

func TestListen_AddressInUse(t *testing.T) {
	l, err := listen("127.0.0.1:0", defaultBacklog)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()

	if _, err := listen(l.Addr().String(), defaultBacklog); err == nil {
		t.Error("expected bind error on a port already listening")
	}
}
