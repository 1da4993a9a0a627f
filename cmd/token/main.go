// Command token issues an access token for an existing actor. It is an
// operator tool for scripts and smoke tests; interactive users get tokens
// from the identity provider.
//
// Usage:
//
//	token [-config path] -actor=7f0c2a3e-...
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres/actor"
	"github.com/heartmarshall/boxstock-backend/internal/auth"
	"github.com/heartmarshall/boxstock-backend/internal/config"
)

func main() {
	actorFlag := flag.String("actor", "", "id of the actor to issue a token for")
	configPath := flag.String("config", "", "path to the YAML config (default $CONFIG_PATH)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: token [-config path] -actor=<uuid>")
		flag.PrintDefaults()
		config.Usage(os.Stderr)
	}
	flag.Parse()

	actorID, err := uuid.Parse(*actorFlag)
	if err != nil {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	a, err := actor.New(pool).GetByID(ctx, actorID)
	if err != nil {
		log.Fatalf("load actor: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).Issue(a.ID, a.Role)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
