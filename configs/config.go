package configs

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App       `mapstructure:"app"`
	Postgres  `mapstructure:"postgres"`
	LLM       `mapstructure:"llm"`
	Session   `mapstructure:"session"`
	Assistant `mapstructure:"assistant"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// LLM struct - OpenAI-compatible completion service settings
type LLM struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"` // seconds, per collaborator call
}

// Session struct - conversation session settings
type Session struct {
	Timeout         int `mapstructure:"timeout"`          // minutes of inactivity before expiry
	HistoryCapacity int `mapstructure:"history_capacity"` // max chat turns kept before summarization kicks in
}

// Assistant struct - business-facing assistant settings
type Assistant struct {
	BusinessName string `mapstructure:"business_name"`
	ContactPhone string `mapstructure:"contact_phone"`
	SummaryWords int    `mapstructure:"summary_words"` // word budget for history summaries
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}
