// Command seed provisions the port catalog.  Ports are reference data
// with no management API; operators add them here, one
// name:code:location:timezone argument per port.
//
//	go run ./cmd/seed "Port of Rotterdam:NLRTM:Rotterdam, Netherlands:Europe/Amsterdam"
package main

import (
    "context"
    "log"
    "os"
    "strings"
    "time"

    "github.com/joho/godotenv"

    "github.com/portconnect/portconnect-backend/internal/config"
    "github.com/portconnect/portconnect-backend/internal/database"
    "github.com/portconnect/portconnect-backend/internal/repository"
)

func main() {
    if len(os.Args) < 2 {
        log.Fatal("usage: seed \"name:code:location:timezone\" ...")
    }

    _ = godotenv.Load()
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    ports := repository.NewPortRepo(db)
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    for _, arg := range os.Args[1:] {
        parts := strings.SplitN(arg, ":", 4)
        if len(parts) < 2 {
            log.Fatalf("invalid port spec %q, want name:code[:location[:timezone]]", arg)
        }
        var location, timezone string
        if len(parts) > 2 {
            location = parts[2]
        }
        if len(parts) > 3 {
            timezone = parts[3]
        }
        id, err := ports.Create(ctx, parts[0], parts[1], location, timezone)
        if err != nil {
            log.Fatalf("create port %q: %v", parts[0], err)
        }
        log.Printf("created port %d: %s (%s)", id, parts[0], strings.ToUpper(parts[1]))
    }
}
