package configs

import (
	"crypto/rand"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	TrustedProxies  []string
	GinMode         string
	SessionSecret   string
	SessionTTL      time.Duration
	CookieSecure    bool
	DBDriver        string
	DBDSN           string
	LogLevel        string
	LogFormat       string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	AuthzEnabled    bool
	AuthzRoutes     []string
	LoginRateLimit  int
	GeneratedSecret bool // 未配置 JWT_SECRET_KEY，使用进程内随机生成的会话密钥
}

const (
	envJWTSecretKey   = "JWT_SECRET_KEY"
	defaultServerPort = "8080"
	envServerPortKey  = "SERVER_PORT"
	envDBPathKey      = "SQLITE_DB_PATH"
	defaultDBFile     = "data/machine_admin.db"
)

// SetDefaults 注册全部配置项的默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault(envServerPortKey, defaultServerPort)
	v.SetDefault("READ_TIMEOUT", 15*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault(envJWTSecretKey, "")
	v.SetDefault("SESSION_TTL", 12*time.Hour)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "")
	v.SetDefault(envDBPathKey, defaultDBFile)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("AUTHZ_ENABLED", false)
	v.SetDefault("AUTHZ_ROUTES", "")
	v.SetDefault("LOGIN_RATE_LIMIT", 30)
}

// Load 从 viper 实例读取配置。环境变量优先于配置文件，配置文件优先于默认值。
func Load(v *viper.Viper) Configuration {
	SetDefaults(v)
	v.AutomaticEnv()

	cfg := Configuration{
		ServerPort:     v.GetString(envServerPortKey),
		ReadTimeout:    v.GetDuration("READ_TIMEOUT"),
		WriteTimeout:   v.GetDuration("WRITE_TIMEOUT"),
		TrustedProxies: splitList(v.GetString("TRUSTED_PROXIES")),
		GinMode:        v.GetString("GIN_MODE"),
		SessionSecret:  v.GetString(envJWTSecretKey),
		SessionTTL:     v.GetDuration("SESSION_TTL"),
		CookieSecure:   v.GetBool("COOKIE_SECURE"),
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:          v.GetString("DB_DSN"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisDB:        v.GetInt("REDIS_DB"),
		AuthzEnabled:   v.GetBool("AUTHZ_ENABLED"),
		AuthzRoutes:    splitList(v.GetString("AUTHZ_ROUTES")),
		LoginRateLimit: v.GetInt("LOGIN_RATE_LIMIT"),
	}
	// sqlite 未显式给出 DSN 时沿用 SQLITE_DB_PATH
	if cfg.DBDSN == "" && cfg.DBDriver == "sqlite" {
		cfg.DBDSN = v.GetString(envDBPathKey)
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}
	// 没有配置密钥时不使用任何固定值，每个进程随机生成，重启后已签发的会话全部失效
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		cfg.SessionSecret = rand.Text() + rand.Text()
		cfg.GeneratedSecret = true
	}
	return cfg
}

// LoadConfig loads configuration from the optional config file, environment variables or defaults.
// It should be called once at application startup.
func LoadConfig(cfgFile string) {
	once.Do(func() {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigFile(cfgFile)
		} else {
			v.SetConfigName("machine_admin")
			v.AddConfigPath(".")
			v.AddConfigPath("./configs")
		}
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
				log.Printf("警告: 读取配置文件失败: %v", err)
			}
		}

		AppConfig = Load(v)
		if AppConfig.GeneratedSecret {
			log.Printf("警告: %s 环境变量未设置。已随机生成会话密钥，服务重启后需要重新登录，多实例部署时必须设置此变量。", envJWTSecretKey)
		}
		log.Println("应用配置已加载。")
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
