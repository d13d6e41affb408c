// cmd/main.go
package main

import (
	"drone-spot-api/app"
)

// @title           Drone Spot API
// @version         1.0
// @description     Drone flight spot discovery and review backend with per-device session management.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
