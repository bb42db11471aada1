// Package config fills configuration structs from the environment.
//
// It wraps github.com/joho/godotenv, which reads optional .env files into the
// process environment, and github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with env tags:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//		DSN  string `env:"PG_CONN_URL,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, ".env"); err != nil {
//		log.Fatal(err)
//	}
//
// Missing .env files are ignored; variables already set in the environment win
// over values from files.
package config
