// Package container wires the application with samber/do. Each *Package
// function registers one concern's providers; binaries compose the
// packages they need.
package container

// Options are the CLI/environment options shared by all binaries.
type Options struct {
	Port        int    `default:"8888"                  help:"Port to listen on"                                        short:"p"`
	BaseURL     string `default:""                      help:"Public base URL for short links (defaults to localhost)"`
	Store       string `default:"memory"                enum:"memory,redis,postgres"                                    help:"Record store backend"`
	RedisAddr   string `default:"localhost:6379"        help:"Redis server address"                                     short:"r"`
	PostgresDSN string `default:"postgres://localhost/shortspan" help:"PostgreSQL connection string"`
	LogFormat   string `default:"console"               enum:"console,json"                                             help:"Log output format"`
}
