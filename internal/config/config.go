package config

import (
	"fmt"
	"log"
	"siigosync/entity"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Listen struct {
	BindIp string `yaml:"bind_ip" env:"LISTEN_BIND_IP" env-default:"0.0.0.0"`
	Port   string `yaml:"port" env:"LISTEN_PORT" env-default:"8080"`
}

type SiigoConfig struct {
	BaseURL     string        `yaml:"base_url" env:"SIIGO_BASE_URL" env-default:"https://api.siigo.com"`
	AccessToken string        `yaml:"access_token" env:"SIIGO_ACCESS_TOKEN" env-default:""`
	PartnerID   string        `yaml:"partner_id" env:"SIIGO_PARTNER_ID" env-default:""`
	Timeout     time.Duration `yaml:"timeout" env:"SIIGO_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Path string `yaml:"path" env:"LOG_PATH" env-default:"/var/log/"`
}

type Config struct {
	Siigo  SiigoConfig   `yaml:"siigo"`
	Listen Listen        `yaml:"listen"`
	Log    LogConfig     `yaml:"log"`
	Users  []entity.User `yaml:"users"`
	Env    string        `yaml:"env" env:"SIIGOSYNC_ENV" env-default:"local"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	once.Do(func() {
		conf, err := Load(path)
		if err != nil {
			log.Fatal(err)
		}
		instance = conf
	})
	return instance
}

// Load reads the config file, environment variables take precedence over file values
func Load(path string) (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("config: %s; %s", err, desc)
	}
	return conf, nil
}
