package server

import (
	"fmt"
	"strings"

	"github.com/golang/glog"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// WebLogger implements core.Logger by tagging messages with the render they belong to
type WebLogger struct {
	renderID string
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string) core.Logger {
	return &WebLogger{renderID: renderID}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, wl.format(format, args...))
}

func (wl *WebLogger) format(format string, args ...interface{}) string {
	return "[" + wl.renderID + "] " + strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
