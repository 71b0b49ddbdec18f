package main

// General API documentation for swaggo. Run `swag init` to regenerate docs.
//
// @title           llamactld API
// @version         2.1.0
// @description     HTTP control API for supervising a local llama-server process.
//
// @contact.name   llamactld maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
