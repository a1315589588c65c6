// handler/main_test.go
package handler

import (
	"os"
	"testing"

	"ai-marketing-api/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
