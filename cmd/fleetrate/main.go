package main

import (
	"github.com/smallbiznis/fleetrate/internal/config"
	"github.com/smallbiznis/fleetrate/internal/migration"
	"github.com/smallbiznis/fleetrate/internal/server"
	"github.com/smallbiznis/fleetrate/pkg/db"
	"github.com/smallbiznis/fleetrate/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		log.Module,
		db.Module,

		// Schema + fleet bootstrap
		migration.Module,

		// Domain modules + HTTP transport
		server.Module,
	)
	app.Run()
}
