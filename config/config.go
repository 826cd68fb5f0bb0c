package config

import (
	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig      AppConfig      `env:"APPCONFIG"`
	TelegramConfig TelegramConfig `env:"TELEGRAMCONFIG"`
	DBConfig       DBConfig       `env:"DBCONFIG"`
}

type AppConfig struct {
	APPName          string `default:"gbi-matchmaker"`
	Version          string `default:"x.x.x" env:"VERSION"`
	Port             int    `default:"8080" env:"APP_PORT"`
	PingURL          string `env:"APP_URL"`
	ServiceName      string `default:"gbi-match-maker" env:"RENDER_SERVICE_NAME"`
	KeepAliveMinutes int    `default:"13" env:"KEEPALIVE_MINUTES"`
}

type TelegramConfig struct {
	Token         string `required:"true" env:"TELEGRAM_BOT_TOKEN"`
	Debug         bool   `env:"TELEGRAM_DEBUG"`
	UpdateTimeout int    `default:"60" env:"TELEGRAM_UPDATE_TIMEOUT"`
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"matchbot" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	return config
}
