package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lucasmonteiro/cvmatch/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for résumé/job compatibility analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv := server.New(server.Config{Port: resolvePort(cmd)})
	return srv.Start()
}

// resolvePort picks the listen port: an explicit --port flag wins, then the
// CVMATCH_PORT environment variable, then the flag default.
func resolvePort(cmd *cobra.Command) int {
	port := servePort
	if env := os.Getenv("CVMATCH_PORT"); env != "" && !cmd.Flags().Changed("port") {
		if parsed, err := strconv.Atoi(env); err == nil {
			port = parsed
		}
	}
	return port
}
