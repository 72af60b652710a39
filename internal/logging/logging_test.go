package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ms-shaziya7/capture-moments/config"
)

func TestSetup_WritesToRotatingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "server.log")

	closer := Setup(config.LogConfig{File: file, MaxSizeMB: 1})
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		gin.DefaultWriter = os.Stdout
		gin.DefaultErrorWriter = os.Stderr
	})

	log.Printf("booking created %s", "b-1")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking created b-1")
}

func TestSetup_StdoutOnly(t *testing.T) {
	closer := Setup(config.LogConfig{})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	assert.NoError(t, closer.Close())
	assert.Equal(t, os.Stdout, gin.DefaultWriter)
}
