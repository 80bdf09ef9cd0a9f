package lotto

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config 配置结构
type Config struct {
	Game           *GameConfig           `mapstructure:"game"`
	Engine         *EngineConfig         `mapstructure:"engine"`
	Generator      *GeneratorConfig      `mapstructure:"generator"`
	CircuitBreaker *CircuitBreakerConfig `mapstructure:"circuit_breaker"`
	Logging        *LoggingConfig        `mapstructure:"logging"`
	Metrics        *MetricsConfig        `mapstructure:"metrics"`
}

// Validate checks every section
func (c *Config) Validate() error {
	if c.Game == nil || c.Engine == nil || c.Generator == nil ||
		c.CircuitBreaker == nil || c.Logging == nil || c.Metrics == nil {
		return ErrConfigInvalid.WithDetails("missing section")
	}

	// 游戏规则是固定的 6/45
	if c.Game.MinNumber != MinNumber || c.Game.MaxNumber != MaxNumber || c.Game.PickCount != PickCount {
		return ErrConfigInvalid.WithDetails(fmt.Sprintf(
			"only %d numbers out of %d-%d are supported", PickCount, MinNumber, MaxNumber))
	}
	if c.Game.TicketPrice <= 0 {
		return ErrConfigInvalid.WithDetails("ticket price must be positive")
	}
	if c.Game.MaxTickets <= 0 {
		return ErrConfigInvalid.WithDetails("max tickets must be positive")
	}

	if c.Engine.ParallelThreshold < 0 {
		return ErrConfigInvalid.WithDetails("parallel threshold cannot be negative")
	}
	if c.Engine.MaxWorkers < 0 {
		return ErrConfigInvalid.WithDetails("max workers cannot be negative")
	}

	if c.Generator.CacheSize < 0 {
		return ErrConfigInvalid.WithDetails("generator cache size cannot be negative")
	}

	if c.CircuitBreaker.Enabled {
		if c.CircuitBreaker.FailureRatio <= 0 || c.CircuitBreaker.FailureRatio > 1 {
			return ErrConfigInvalid.WithDetails("circuit breaker failure ratio must be in (0, 1]")
		}
		if c.CircuitBreaker.Timeout < 0 || c.CircuitBreaker.Interval < 0 {
			return ErrConfigInvalid.WithDetails("circuit breaker durations cannot be negative")
		}
	}

	switch strings.ToLower(c.Logging.Backend) {
	case "logrus", "zap", "silent":
	default:
		return ErrConfigInvalid.WithDetails("invalid logging backend " + c.Logging.Backend)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return ErrConfigInvalid.WithDetails("invalid log level " + c.Logging.Level)
	}

	return nil
}

// GameConfig 游戏规则配置
type GameConfig struct {
	TicketPrice int64 `mapstructure:"ticket_price"`
	MinNumber   int   `mapstructure:"min_number"`
	MaxNumber   int   `mapstructure:"max_number"`
	PickCount   int   `mapstructure:"pick_count"`
	MaxTickets  int   `mapstructure:"max_tickets"` // 单次购买的彩票上限
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		TicketPrice: DefaultTicketPrice,
		MinNumber:   MinNumber,
		MaxNumber:   MaxNumber,
		PickCount:   PickCount,
		MaxTickets:  DefaultMaxTickets,
	}
}

// EngineConfig 评估引擎配置
type EngineConfig struct {
	ParallelThreshold int `mapstructure:"parallel_threshold"`
	MaxWorkers        int `mapstructure:"max_workers"`
}

func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		ParallelThreshold: DefaultParallelThreshold,
		MaxWorkers:        DefaultMaxWorkers,
	}
}

// GeneratorConfig 随机号码生成配置
type GeneratorConfig struct {
	Secure    bool  `mapstructure:"secure"`     // crypto/rand when true, seeded math/rand otherwise
	Seed      int64 `mapstructure:"seed"`       // 0 means time based
	CacheSize int   `mapstructure:"cache_size"` // floats buffered by the secure source
}

func DefaultGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		Secure:    true,
		Seed:      0,
		CacheSize: DefaultRandomCacheSize,
	}
}

// CircuitBreakerConfig 熔断器配置
type CircuitBreakerConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Name          string        `mapstructure:"name"`
	MaxRequests   uint32        `mapstructure:"max_requests"`
	Interval      time.Duration `mapstructure:"interval"`
	Timeout       time.Duration `mapstructure:"timeout"`
	FailureRatio  float64       `mapstructure:"failure_ratio"`
	MinRequests   uint32        `mapstructure:"min_requests"`
	OnStateChange bool          `mapstructure:"on_state_change"`
}

// DefaultCircuitBreakerConfig 返回默认熔断器配置
func DefaultCircuitBreakerConfig() *CircuitBreakerConfig {
	return &CircuitBreakerConfig{
		Enabled:       true,
		Name:          DefaultCircuitBreakerName,
		MaxRequests:   DefaultCircuitBreakerMaxRequests,
		Interval:      DefaultCircuitBreakerInterval,
		Timeout:       DefaultCircuitBreakerTimeout,
		FailureRatio:  DefaultCircuitBreakerFailureRatio,
		MinRequests:   DefaultCircuitBreakerMinRequests,
		OnStateChange: DefaultCircuitBreakerOnStateChange,
	}
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Backend string `mapstructure:"backend"`
}

func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{Level: DefaultLogLevel, Backend: DefaultLogBackend}
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

func DefaultMetricsConfig() *MetricsConfig {
	return &MetricsConfig{Enabled: DefaultMetricsEnabled, Namespace: DefaultMetricsPrefix}
}

// DefaultConfig returns a config populated with all defaults
func DefaultConfig() *Config {
	return &Config{
		Game:           DefaultGameConfig(),
		Engine:         DefaultEngineConfig(),
		Generator:      DefaultGeneratorConfig(),
		CircuitBreaker: DefaultCircuitBreakerConfig(),
		Logging:        DefaultLoggingConfig(),
		Metrics:        DefaultMetricsConfig(),
	}
}

// ConfigManager 配置管理器
type ConfigManager struct {
	viper  *viper.Viper
	mu     sync.RWMutex
	config *Config
	logger Logger
}

// NewConfigManager 创建配置管理器
func NewConfigManager() *ConfigManager {
	v := viper.New()

	// 设置配置文件名和路径
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/lotto")
	v.AddConfigPath("$HOME/.lotto")

	// 设置环境变量前缀
	v.SetEnvPrefix("LOTTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cm := &ConfigManager{viper: v, logger: NewSilentLogger()}
	cm.setDefaults()
	return cm
}

// NewConfigManagerWithFile 创建使用指定配置文件的配置管理器
func NewConfigManagerWithFile(path string) *ConfigManager {
	cm := NewConfigManager()
	cm.viper.SetConfigFile(path)
	return cm
}

// NewDefaultConfigManager 创建带默认配置的配置管理器, 不读取文件
func NewDefaultConfigManager() *ConfigManager {
	cm := NewConfigManager()
	cm.config = DefaultConfig()
	return cm
}

// SetLogger 设置日志记录器, 用于报告配置热更新失败
func (cm *ConfigManager) SetLogger(logger Logger) {
	if logger == nil {
		logger = NewSilentLogger()
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.logger = logger
}

// LoadConfig 加载配置
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	// 读取配置文件
	if err := cm.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// 配置文件不存在时使用默认配置
	}

	config, err := cm.decode()
	if err != nil {
		return nil, err
	}

	cm.mu.Lock()
	cm.config = config
	cm.mu.Unlock()
	return config, nil
}

func (cm *ConfigManager) decode() (*Config, error) {
	config := &Config{}
	if err := cm.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

// setDefaults 设置默认配置值
func (cm *ConfigManager) setDefaults() {
	// 游戏规则
	cm.viper.SetDefault("game.ticket_price", DefaultTicketPrice)
	cm.viper.SetDefault("game.min_number", MinNumber)
	cm.viper.SetDefault("game.max_number", MaxNumber)
	cm.viper.SetDefault("game.pick_count", PickCount)
	cm.viper.SetDefault("game.max_tickets", DefaultMaxTickets)

	// 评估引擎
	cm.viper.SetDefault("engine.parallel_threshold", DefaultParallelThreshold)
	cm.viper.SetDefault("engine.max_workers", DefaultMaxWorkers)

	// 号码生成
	cm.viper.SetDefault("generator.secure", true)
	cm.viper.SetDefault("generator.seed", 0)
	cm.viper.SetDefault("generator.cache_size", DefaultRandomCacheSize)

	// 熔断器默认配置
	cm.viper.SetDefault("circuit_breaker.enabled", true)
	cm.viper.SetDefault("circuit_breaker.name", DefaultCircuitBreakerName)
	cm.viper.SetDefault("circuit_breaker.max_requests", DefaultCircuitBreakerMaxRequests)
	cm.viper.SetDefault("circuit_breaker.interval", "60s")
	cm.viper.SetDefault("circuit_breaker.timeout", "30s")
	cm.viper.SetDefault("circuit_breaker.failure_ratio", DefaultCircuitBreakerFailureRatio)
	cm.viper.SetDefault("circuit_breaker.min_requests", DefaultCircuitBreakerMinRequests)
	cm.viper.SetDefault("circuit_breaker.on_state_change", DefaultCircuitBreakerOnStateChange)

	// 日志与指标
	cm.viper.SetDefault("logging.level", DefaultLogLevel)
	cm.viper.SetDefault("logging.backend", DefaultLogBackend)
	cm.viper.SetDefault("metrics.enabled", DefaultMetricsEnabled)
	cm.viper.SetDefault("metrics.namespace", DefaultMetricsPrefix)
}

// WatchConfig 监听配置变化, invalid updates are dropped and the previous config stays active
func (cm *ConfigManager) WatchConfig(callback func(*Config)) {
	cm.viper.OnConfigChange(func(e fsnotify.Event) {
		config, err := cm.decode()
		if err != nil {
			// 记录错误但不中断服务
			cm.mu.RLock()
			logger := cm.logger
			cm.mu.RUnlock()
			logger.Error("Config reload from %s rejected, keeping previous config: %v", e.Name, err)
			return
		}

		cm.mu.Lock()
		cm.config = config
		cm.mu.Unlock()

		if callback != nil {
			callback(config)
		}
	})
	cm.viper.WatchConfig()
}

// GetConfig 获取当前配置
func (cm *ConfigManager) GetConfig() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	return cm.config
}

// ReloadConfig 重新加载配置
func (cm *ConfigManager) ReloadConfig() (*Config, error) { return cm.LoadConfig() }
