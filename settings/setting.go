package settings

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// legacy environment names of the original deployment
var envAliases = map[string]string{
	"mysql.host":           "DB_SERVER_ADDR",
	"mysql.username":       "DB_USER",
	"mysql.password":       "DB_PASSWORD",
	"mysql.database":       "DB",
	"mysql.max_open_conns": "DB_POOL_SIZE",
	"service.token.secret": "JWT_SECRET",
	"service.account.salt": "SALT",
	"CORF.frontend_path":   "CORS_ORIGIN",
	"server.mode":          "NODE_ENV",
}

func InitSettings(confPath string) error {
	setDefaults()

	// .env is optional, real env vars win
	_ = godotenv.Load()

	viper.SetEnvPrefix("CBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for key, env := range envAliases {
		if err := viper.BindEnv(key, "CBOARD_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return errors.Wrapf(err, "settings: bind env %s", env)
		}
	}

	if confPath == "" {
		return nil
	}
	if _, err := os.Stat(confPath); os.IsNotExist(err) {
		return nil
	}
	viper.SetConfigFile(confPath)
	return errors.Wrap(viper.ReadInConfig(), "settings: read config")
}

func setDefaults() {
	viper.SetDefault("server.ip", "")
	viper.SetDefault("server.port", 8444)
	viper.SetDefault("server.lang", "en")
	viper.SetDefault("server.start_time", "2024-01-01") // snowflake epoch
	viper.SetDefault("server.machine_id", 1)
	viper.SetDefault("server.mode", "development")
	viper.SetDefault("server.base_path", "/api")
	viper.SetDefault("server.shutdown_waiting_time", 30) // seconds after SIGINT before forced exit

	viper.SetDefault("mysql.host", "127.0.0.1")
	viper.SetDefault("mysql.port", 3306)
	viper.SetDefault("mysql.username", "root")
	viper.SetDefault("mysql.password", "")
	viper.SetDefault("mysql.database", "cboard")
	viper.SetDefault("mysql.max_open_conns", 10)
	viper.SetDefault("mysql.max_idle_conns", 10)
	viper.SetDefault("mysql.debug", false)
	viper.SetDefault("mysql.auto_migrate", true)

	viper.SetDefault("redis.enable", false)
	viper.SetDefault("redis.host", "127.0.0.1")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.poolsize", 10)
	viper.SetDefault("redis.max_oper_time", 3)

	viper.SetDefault("logger.level", 0)
	viper.SetDefault("logger.path", "./logs/cboard.log")
	viper.SetDefault("logger.max_size", 16)
	viper.SetDefault("logger.max_backups", 5)
	viper.SetDefault("logger.compress", false)
	viper.SetDefault("logger.console", true)

	viper.SetDefault("CORF.frontend_path", "*")

	viper.SetDefault("ratelimit.rate", 0.6)
	viper.SetDefault("ratelimit.capacity", 5000)
	viper.SetDefault("ratelimit.vote_rps", 50)

	viper.SetDefault("service.token.secret", "")
	viper.SetDefault("service.token.issuer", "cboard")
	viper.SetDefault("service.token.cookie_name", "accessToken")
	viper.SetDefault("service.token.expire_duration", 86400)

	viper.SetDefault("service.account.salt", "")

	viper.SetDefault("service.board.page_size", 10)
	viper.SetDefault("service.board.category_limit", 10)
	viper.SetDefault("service.board.preview_size", 4)
	viper.SetDefault("service.post.recent_limit", 10)
	viper.SetDefault("service.swagger.enable", false)
}

// IsProduction decides the cookie secure flag.
func IsProduction() bool {
	return strings.EqualFold(viper.GetString("server.mode"), "production")
}
