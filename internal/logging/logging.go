package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/natefinch/lumberjack"

	"github.com/agenthands/interactome/internal/config"
)

// Setup routes the standard logger to a rotating file when cfg names one,
// and to stdout otherwise. The returned writer is also handed to gin so
// request logs land in the same place. Close it on shutdown.
func Setup(cfg config.LogConfig) io.WriteCloser {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if cfg.File == "" {
		log.SetOutput(os.Stdout)
		return nopCloser{os.Stdout}
	}

	fmt.Printf("Sending log messages to: %s\n", cfg.File)
	l := &lumberjack.Logger{
		Filename: cfg.File,
		MaxSize:  cfg.MaxSize,
		MaxAge:   cfg.MaxAge,
	}
	log.SetOutput(l)
	return l
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
