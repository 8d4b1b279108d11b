// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// StopWaitTime bounds how long a graceful shutdown may take.
const StopWaitTime = 5 * time.Second

// Server is a lifecycle handle for a network server.
type Server interface {
	Start() error
	Stop() error
}

// Config holds the listener options of a server.
type Config struct {
	Host         string `env:"HOST"           envDefault:""`
	Port         string `env:"PORT"           envDefault:""`
	CertFile     string `env:"SERVER_CERT"    envDefault:""`
	KeyFile      string `env:"SERVER_KEY"     envDefault:""`
	ServerCAFile string `env:"SERVER_CA_CERT" envDefault:""`
	ClientCAFile string `env:"CLIENT_CA_CERT" envDefault:""`
}

// BaseServer carries the state shared by all server implementations.
type BaseServer struct {
	Ctx     context.Context
	Cancel  context.CancelFunc
	Name    string
	Address string
	Config  Config
	Logger  *slog.Logger
}

func NewBaseServer(ctx context.Context, cancel context.CancelFunc, name string, config Config, logger *slog.Logger) BaseServer {
	return BaseServer{
		Ctx:     ctx,
		Cancel:  cancel,
		Name:    name,
		Address: fmt.Sprintf("%s:%s", config.Host, config.Port),
		Config:  config,
		Logger:  logger,
	}
}

// StopSignalHandler stops all servers on SIGINT/SIGABRT or when the
// context is cancelled.
func StopSignalHandler(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, svcName string, servers ...Server) error {
	var err error
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGABRT)
	select {
	case sig := <-c:
		defer cancel()
		for _, server := range servers {
			err = server.Stop()
		}
		logger.Info(fmt.Sprintf("%s service shutdown by signal: %s", svcName, sig))
		return err
	case <-ctx.Done():
		return nil
	}
}
