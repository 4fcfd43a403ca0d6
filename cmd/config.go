package cmd

import "fmt"

// Config carries the flat runtime configuration of the service.
// Values come from the environment (optionally a .env file), with a few
// command-line flag overrides applied in main.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AutoAssignSchedule is a 6-field cron expression for the background
	// assignment sweep. Empty disables the sweep.
	AutoAssignSchedule string
	// AutoAssignMaxOrders caps the batch size of each sweep; 0 uses the
	// bulk run's default.
	AutoAssignMaxOrders int
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
