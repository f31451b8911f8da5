package main

import (
	"github.com/CPU-commits/Academy_BBackoffice/api/server"
)

// @title          Academy Back Office API
// @version        1.0
// @description    API Server for the academy back office

// @contact.name  API Support

// @host     localhost:8080
// @BasePath /api/l/backoffice

// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
// @description                BearerJWTToken in Authorization Header

// @accept  json
// @produce json
func main() {
	server.Init()
}
