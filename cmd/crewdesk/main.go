package main

import (
	"context"
	"fmt"
	"os"

	"github.com/crewdesk/crewdesk-go/internal/config"
	"github.com/crewdesk/crewdesk-go/internal/handler/cli"
	"github.com/crewdesk/crewdesk-go/internal/pkg/kvstore"
	"github.com/crewdesk/crewdesk-go/internal/pkg/logger"
	"github.com/crewdesk/crewdesk-go/internal/repository/localstore"
	employeeService "github.com/crewdesk/crewdesk-go/internal/service/employee"
	sessionService "github.com/crewdesk/crewdesk-go/internal/service/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)

	kv, err := kvstore.NewLocalStore(cfg.App.DataDir)
	if err != nil {
		log.Error().Err(err).Str("dir", cfg.App.DataDir).Msg("failed to open data directory")
		os.Exit(1)
	}

	// One shared store instance per process; every view goes through it
	employeeRepo, err := localstore.NewEmployeeRepository(kv)
	if err != nil {
		log.Error().Err(err).Msg("failed to open employee storage")
		os.Exit(1)
	}
	sessionRepo := localstore.NewSessionRepository(kv)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, log)
	sessionSvc := sessionService.NewSessionService(sessionRepo, log)

	authHandler := cli.NewAuthHandler(sessionSvc, os.Stdout)
	employeeHandler := cli.NewEmployeeHandler(employeeSvc, os.Stdout)
	guard := cli.NewGuard(sessionSvc)

	router := cli.NewRouter(authHandler, employeeHandler, guard, os.Stdout)

	if err := router.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}
