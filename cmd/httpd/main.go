// Command httpd serves .html and .txt files from a directory over HTTP/1.1.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fatih/color"

	httpd "github.com/xianren68/static-httpd"
)

// exUsage 参数错误时的退出码 (sysexits.h EX_USAGE)
const exUsage = 64

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// options 命令行参数
type options struct {
	config string
	host   string
	root   string
	port   string
}

// parseArgs 解析参数, 选项可以出现在端口号前后
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := new(options)
	fs := flag.NewFlagSet("httpd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "TOML config file")
	fs.StringVar(&opts.host, "host", "", "Host to bind (default localhost)")
	fs.StringVar(&opts.root, "root", "", "Directory to serve (default .)")
	fs.Usage = func() { printUsage(fs) }

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if len(positional) != 1 {
		printUsage(fs)
		return nil, fmt.Errorf("expected exactly one PORT argument, got %d", len(positional))
	}
	opts.port = positional[0]
	return opts, nil
}

// run 返回进程退出码
func run(ctx context.Context, args []string, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return exUsage
	}

	cfg := httpd.DefaultConfig()
	if opts.config != "" {
		if cfg, err = httpd.LoadConfig(opts.config); err != nil {
			return fail(stderr, err.Error())
		}
	}
	port, err := strconv.Atoi(opts.port)
	if err != nil {
		return fail(stderr, "Port number should be an integer!")
	}
	cfg.Port = port
	if opts.host != "" {
		cfg.Host = opts.host
	}
	if opts.root != "" {
		cfg.Root = opts.root
	}
	if err := cfg.Validate(); err != nil {
		return fail(stderr, err.Error())
	}

	logger, err := httpd.NewLogger(stderr, cfg.LogLevel)
	if err != nil {
		return fail(stderr, err.Error())
	}
	if err := httpd.New(cfg, logger).ListenAndServe(ctx); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		return 1
	}
	return 0
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	color.New(color.Bold).Fprintln(out, "Usage: httpd [options] PORT")
	fmt.Fprintln(out, "Simple http server written from scratch on top of TCP sockets")
	fmt.Fprintln(out)
	fs.PrintDefaults()
}

func fail(stderr io.Writer, msg string) int {
	color.New(color.FgRed).Fprintf(stderr, "ERROR: %s\n", msg)
	return exUsage
}
