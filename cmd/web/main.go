// @title           TakaEarn API
// @version         1.0
// @description     Бухгалтерское ядро платформы микрозаданий: балансы, сабмишены, выводы.
// @contact.name    TakaEarn
// @contact.email   support@takaearn.app
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "takaearn_backend/internal/app"

func main() {
	app.Run()
}
