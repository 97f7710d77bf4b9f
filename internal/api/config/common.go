package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// StoreConfig 文档存储配置
type StoreConfig struct {
	Path   string       `mapstructure:"path"`
	Backup BackupConfig `mapstructure:"backup"`
}

// BackupConfig 定时备份配置
type BackupConfig struct {
	Enable bool   `mapstructure:"enable"`
	Dir    string `mapstructure:"dir"`
	Spec   string `mapstructure:"spec"`
}
