package configs

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

func GetConfig() *Config {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")

		v.SetDefault("server.address", ":8000")
		v.SetDefault("redis.address", "socket-canvas-redis:6379")

		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}

		config = &Config{
			Viper: v,
		}
	})
	return config
}
