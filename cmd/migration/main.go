package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-management/cmd/config"
)

// Applies a SQL schema file statement by statement.
//
// Usage:
// > go run ./cmd/migration -file=scripts/database.sql
func main() {
	cfg := config.Load()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		panic(err)
	}
	defer db.Close()

	filePtr := flag.String("file", "scripts/database.sql", "the sql file to execute")
	flag.Parse()

	readFile, err := os.Open(*filePtr)
	if err != nil {
		panic(err)
	}
	defer readFile.Close()

	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	for fileScanner.Scan() {
		line := fileScanner.Text()
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			db.MustExec(builder.String())
			builder = strings.Builder{}
		}
	}
}
