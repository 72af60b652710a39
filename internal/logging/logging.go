package logging

import (
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ms-shaziya7/capture-moments/config"
)

// Setup points the standard logger and gin's access log at stdout, and at a
// rotating file when cfg.File is set. The returned closer releases the file.
func Setup(cfg config.LogConfig) io.Closer {
	if cfg.File == "" {
		log.SetOutput(os.Stdout)
		gin.DefaultWriter = os.Stdout
		return io.NopCloser(nil)
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	out := io.MultiWriter(os.Stdout, rotating)
	log.SetOutput(out)
	gin.DefaultWriter = out
	gin.DefaultErrorWriter = out
	return rotating
}
