// @title           AdBoard API
// @version         1.0
// @description     Classifieds board backend: auth, ads, user management.
// @host            localhost:4000
// @BasePath        /

package main

import "adboard_backend/internal/app"

func main() {
	app.Run()
}
