package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Estate CRM Revenue API
// @version         0.1.0
// @description     Revenue attribution, marketing ROI and commission distribution.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
