package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/df07/go-phong-raytracer/web/server"
)

var (
	port      = flag.Int("port", 8080, "Port to serve on")
	scenesDir = flag.String("scenes-dir", "", "Directory holding .yaml scenes (default: ./scenes or ../scenes)")
)

type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.Warningf(format, args...)
}

func main() {
	flag.Parse()
	defer glog.Flush()

	glog.Infof("flags:")
	glog.Infof("port: %v", *port)
	glog.Infof("scenes-dir: %v", *scenesDir)

	dir := *scenesDir
	if dir == "" {
		dir = scene.FindScenesDir()
	}

	webServer := server.NewServer(*port, scene.NewRegistry(dir, glogLogger{}))

	glog.Infof("Phong Raytracer Web Server")
	glog.Infof("Try http://localhost:%d/api/render?scene=world", *port)

	if err := webServer.Start(); err != nil {
		glog.Exitf("Error starting server: %v", err)
	}
}
