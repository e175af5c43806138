// @title           Car Parts API
// @version         1.0
// @description     Catalog, orders, users and card payments for a car parts manufacturer.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import (
	"os"

	"github.com/carparts/carparts-api/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
