// @title           Marlink Group API
// @version         1.0
// @description     Backend for the Marlink Group corporate website.
// @contact.name    Marlink Group
// @contact.email   info@marlink.example
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api

package main

import "marlink_backend/internal/app"

func main() {
	app.Run()
}
