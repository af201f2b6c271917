package internal

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=data/showroom"`
	// Colours toggles colorized section headers on stdout.
	Colours bool `env:"COLOURS,default=true"`
}
