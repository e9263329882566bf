package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type StorageConfig struct {
	Dir string `yaml:"dir" validate:"required|unixPath"`
}

type BirthdayConfig struct {
	HorizonDays int `yaml:"horizonDays" validate:"required|min:1"`
}

type RetryConfig struct {
	InitialDelay time.Duration `yaml:"initialDelay"`
	MaxDelay     time.Duration `yaml:"maxDelay"`
	MaxTries     uint          `yaml:"maxTries"`
	Timeout      time.Duration `yaml:"timeout"`
}

type ScheduleConfig struct {
	WarmInterval    time.Duration `yaml:"warmInterval" validate:"required|min:1"`
	RefreshInterval time.Duration `yaml:"refreshInterval" validate:"required|min:1"`
	Retry           RetryConfig   `yaml:"retry"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Logger    LoggerConfig   `yaml:"logger"`
	Storage   StorageConfig  `yaml:"storage"`
	Birthday  BirthdayConfig `yaml:"birthday"`
	Schedule  ScheduleConfig `yaml:"schedule"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}
