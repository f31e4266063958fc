package main

import (
	"Backoffice/config"
	"Backoffice/dao"
	"Backoffice/pkg/database"
	"Backoffice/pkg/jwt"
	"Backoffice/pkg/log"
	"Backoffice/pkg/server"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetLevel(cfg.App.LogLevel)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "back-office api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					app, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "sync table schema",
				Action: func(ctx *cli.Context) error {
					db, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					if err := dao.AutoMigrate(db); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("database", cfg.MySQL.Database))
					return nil
				},
			},
			{
				Name:  "seed-permissions",
				Usage: "insert the permission catalog and built-in roles",
				Action: func(ctx *cli.Context) error {
					svc, err := InitPermissionService(cfg)
					if err != nil {
						return err
					}
					result, err := svc.SeedCatalog(ctx.Context)
					if err != nil {
						return err
					}
					fmt.Printf("permissions: %d, roles: %v\n", result.Permissions, result.Roles)
					return nil
				},
			},
			{
				Name:  "token",
				Usage: "issue an access token",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Usage: "user id", Required: true},
					&cli.StringSliceFlag{Name: "role", Usage: "role name, repeatable"},
				},
				Action: func(ctx *cli.Context) error {
					token, err := jwt.GenerateToken(
						[]byte(cfg.Jwt.Secret),
						cfg.Jwt.Issuer,
						strconv.FormatUint(ctx.Uint64("user"), 10),
						ctx.StringSlice("role"),
						jwt.TypeAccess,
						cfg.Jwt.Expire,
					)
					if err != nil {
						return err
					}
					fmt.Println(token)
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server", zap.Error(err))
	}
}
