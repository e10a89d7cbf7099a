package cmd

import (
	"fmt"
	"time"

	"workspace/internal/config"
	"workspace/internal/server"
)

// ServeCmd serves the read-only dashboard over SSH
type ServeCmd struct {
	Host     string `help:"Host to bind to" default:"0.0.0.0"`
	Interval int    `help:"Seconds between dashboard refreshes" default:"5"`
	Port     string `help:"Port to listen on" default:"2222"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	srv, err := server.NewServer(s.Host, s.Port, config.DBPath(), time.Duration(s.Interval)*time.Second)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
