package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/etitcombe/jotter/db"
	"github.com/etitcombe/jotter/rand"
)

/*
Maintenance commands for the web application.

1. > ./admin -cmd=secret
CPjaot8hYLXpm4xIaXHWsQKJWkelY3msP6AbR8wYmrE=
[paste this into the secret_key field of the settings file]
2. > ./admin -cmd=initdb -dsn=./database/jotter.db
Database initialized!
[destroys any existing entries; first-time setup only]
*/

func main() {
	var (
		cmd string
		dsn string
	)
	flag.StringVar(&cmd, "cmd", "", "The command to execute: initdb, secret. [Required]")
	flag.StringVar(&dsn, "dsn", "./database/jotter.db", "The database to initialize. [Used when cmd=initdb]")
	flag.Parse()

	switch cmd {
	case "initdb":
		initDB(dsn)
	case "secret":
		generateSecret()
	default:
		flag.Usage()
	}
}

func initDB(dsn string) {
	store := db.NewStore(dsn)
	if err := store.Open(); err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := store.Init(context.Background(), db.Schema); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Database initialized!")
}

func generateSecret() {
	key, err := rand.Key()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(key)
}
