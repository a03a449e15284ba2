package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	GIS    GISConfig    `yaml:"gis"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

// GISConfig 县属宗地查询服务配置
type GISConfig struct {
	PinellasURL     string        `yaml:"pinellas_url"`
	HillsboroughURL string        `yaml:"hillsborough_url"`
	Timeout         time.Duration `yaml:"timeout"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

func loadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		GIS: GISConfig{
			PinellasURL:     "https://egis.pinellas.gov/arcgis/rest/services/Parcels/MapServer/0/query",
			HillsboroughURL: "https://maps.hillsboroughcounty.org/arcgis/rest/services/Parcels/MapServer/0/query",
			Timeout:         12 * time.Second,
			CacheTTL:        5 * time.Minute,
		},
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	// 环境变量优先级高于配置文件
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		config.Server.Mode = mode
	}
	if url := os.Getenv("GIS_PINELLAS_URL"); url != "" {
		config.GIS.PinellasURL = url
	}
	if url := os.Getenv("GIS_HILLSBOROUGH_URL"); url != "" {
		config.GIS.HillsboroughURL = url
	}
	if secs := os.Getenv("GIS_TIMEOUT_SECONDS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			config.GIS.Timeout = time.Duration(n) * time.Second
		}
	}

	return config
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func UpdateConfig(newCfg *Config) {
	cfg = newCfg
}
