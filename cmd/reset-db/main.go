// Command-line tool to reset the local database by dropping every table.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"talentflow-backend/internal/database"
)

func main() {

	// Warning message
	fmt.Println("⚠️ WARNING: This command will DROP ALL TABLES in your local database.")
	fmt.Println("This action is irreversible. Do you want to continue? (yes/no): ")

	// Ask for confirmation
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	input = strings.TrimSpace(strings.ToLower(input))

	if input != "yes" {
		fmt.Println("Operation cancelled.")
		return
	}

	// Open without the first-run seed so the drop sees the tables as they are
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "talentflow.db"
	}
	db, err := database.NewDBInstance(&database.DBConfig{Path: path, SkipSeed: true})
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}

	var tables []string
	err = db.DB.Raw(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`).
		Scan(&tables).Error
	if err != nil {
		log.Fatalf("failed to list tables: %v", err)
	}

	for _, table := range tables {
		if err := db.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
			log.Fatalf("failed to drop table %s: %v", table, err)
		}
	}

	fmt.Println("✅ All tables dropped successfully.")
}
