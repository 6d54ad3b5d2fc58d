package main

import (
	"flag"
	"github.com/joho/godotenv"
	"greencommute-server/db"
	"log"
	"os"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			log.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			return
		}
	}()

	// setup routes and serve
	server := SetupServer(*port)
	log.Println("Listening on port " + *port)
	err = server.ListenAndServe()
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
