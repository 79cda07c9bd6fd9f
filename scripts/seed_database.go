package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()
	log.SetFormatter(&log.JSONFormatter{})

	if err := seedDatabase(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// seedDatabase migrates and seeds the database named by -db or DB_URI.
// The connection is closed before it returns, on success or failure.
func seedDatabase(args []string, out io.Writer) (err error) {
	flags := flag.NewFlagSet("seed_database", flag.ContinueOnError)
	reset := flags.Bool("reset", false, "Delete every restaurant, pizza and restaurant pizza before seeding")
	dbURI := flags.String("db", "", "Database URI (defaults to DB_URI or sqlite:///app.db)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	uri := *dbURI
	if uri == "" {
		uri = config.GetEnvWithDefault("DB_URI", config.DefaultDatabaseURI)
	}

	dbConfig, err := database.ParseDatabaseURI(uri)
	if err != nil {
		return fmt.Errorf("invalid database URI: %w", err)
	}
	dbConfig.MaxRetries = 1

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close database: %w", closeErr)
		}
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if *reset {
		log.Info("Clearing existing data")
		if err := database.Reset(db); err != nil {
			return fmt.Errorf("failed to clear database: %w", err)
		}
	}

	data := database.DefaultSeedData()
	seeded, err := database.SeedIfEmpty(db, data)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	if !seeded {
		fmt.Fprintln(out, "Database already contains restaurants; run with -reset to reseed")
		return nil
	}
	fmt.Fprintf(out, "Seeded %d restaurants, %d pizzas and %d restaurant pizzas\n",
		len(data.Restaurants), len(data.Pizzas), len(data.Menu))
	return nil
}
