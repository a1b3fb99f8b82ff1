package main

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// configLogrus applies the config file settings, then the command line flags
// on top of them.
func configLogrus(ctx *cli.Context, log *logrus.Logger, cfg LogConfig) error {
	if ctx.Bool("debug") {
		log.SetLevel(logrus.DebugLevel)
		log.SetReportCaller(true)
		// Shorten function and file names reported by the logger by trimming
		// the directory of this package.
		_, file, _, _ := runtime.Caller(0)
		prefix := filepath.Dir(file) + "/"
		log.SetFormatter(&logrus.TextFormatter{
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				function := strings.TrimPrefix(f.Function, prefix) + "()"
				fileLine := strings.TrimPrefix(f.File, prefix) + ":" + strconv.Itoa(f.Line)
				return function, fileLine
			},
		})
	}

	format := cfg.Format
	if ctx.IsSet("log-format") {
		format = ctx.String("log-format")
	}
	switch format {
	case "", "text":
		// keep the current formatter
	case "json":
		log.SetFormatter(new(logrus.JSONFormatter))
	default:
		return xerrors.New("invalid log-format: " + format)
	}

	file := cfg.File
	if ctx.IsSet("log") {
		file = ctx.String("log")
	}
	if file != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
	}
	return nil
}
