package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           EONET Events API
// @version         0.1.0
// @description     CRUD and filtered queries over natural-event records.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
