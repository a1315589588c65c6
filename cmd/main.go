// cmd/main.go
package main

import (
	"ai-marketing-api/app"
	_ "ai-marketing-api/docs"
)

// @title           AI Marketing Command Center API
// @version         1.0
// @description     Campaign management, AI content generation, scheduling, chat assistant, auto-replies and analytics for marketing teams.

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
