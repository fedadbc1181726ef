package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fieldtask/fieldtask/internal/server"
	"github.com/fieldtask/fieldtask/internal/storage"
)

const (
	// DefaultDBFile is the default database location under home.
	DefaultDBFile = ".fieldtask/fieldtask.db"
)

func main() {
	addr := flag.String("addr", server.DefaultAddress, "address to listen on")
	dbPath := flag.String("db", "", "path to the SQLite database (default ~/"+DefaultDBFile+")")
	flag.Parse()

	if *dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}
		*dbPath = filepath.Join(homeDir, DefaultDBFile)
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0700); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	store, err := storage.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	srv := server.New(*addr, store)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
