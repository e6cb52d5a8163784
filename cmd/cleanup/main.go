// Command cleanup removes delivered and cancelled orders older than the
// retention window. It is a deliberate operator tool: it reports what it
// would touch, supports a dry run, and deletes in batches so the orders
// table is never locked for long.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/pflag"

	"fluxi/cmd"
)

const terminalStatusFilter = "status IN ('delivered', 'cancelled')"

func main() {
	dryRun := pflag.Bool("dry-run", false, "report what would be deleted without deleting")
	retentionDays := pflag.Int("retention-days", 90, "keep terminal orders newer than this many days")
	batchSize := pflag.Int("batch-size", 100, "rows deleted per statement")
	pflag.Parse()

	if *retentionDays <= 0 || *batchSize <= 0 {
		fmt.Fprintln(os.Stderr, "retention-days and batch-size must be positive")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", getConfigs().PostgresDSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	cutoff := time.Now().AddDate(0, 0, -*retentionDays)

	total, err := countExpired(db, cutoff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error counting expired orders: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d terminal orders older than %s (retention %d days)\n",
		total, cutoff.Format("2006-01-02"), *retentionDays)

	if *dryRun {
		fmt.Println("dry run, nothing deleted")
		return
	}

	if total == 0 {
		return
	}

	deleted, err := deleteExpired(db, cutoff, *batchSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error after deleting %d of %d orders: %v\n", deleted, total, err)
		os.Exit(1)
	}

	fmt.Printf("deleted %d orders\n", deleted)
}

func countExpired(db *sql.DB, cutoff time.Time) (int64, error) {
	var count int64
	err := db.QueryRow(
		"SELECT COUNT(*) FROM orders WHERE "+terminalStatusFilter+" AND updated_at < $1",
		cutoff,
	).Scan(&count)
	return count, err
}

// deleteExpired removes expired orders in batches until none remain. It
// returns how many rows went away, also when a later batch fails.
func deleteExpired(db *sql.DB, cutoff time.Time, batchSize int) (int64, error) {
	var deleted int64

	for {
		result, err := db.Exec(
			"DELETE FROM orders WHERE id IN ("+
				"SELECT id FROM orders WHERE "+terminalStatusFilter+" AND updated_at < $1 LIMIT $2)",
			cutoff, batchSize,
		)
		if err != nil {
			return deleted, err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return deleted, err
		}
		if affected == 0 {
			return deleted, nil
		}

		deleted += affected
		fmt.Printf("deleted batch of %d (total %d)\n", affected, deleted)
	}
}

func getConfigs() cmd.Config {
	// Missing .env is fine here; the variables may come from the
	// environment directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
	}
}
