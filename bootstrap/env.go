package bootstrap

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv         string `mapstructure:"APP_ENV"`
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout int    `mapstructure:"CONTEXT_TIMEOUT"`

	MongoURI    string `mapstructure:"MONGO_URI"`
	MongoDBName string `mapstructure:"MONGO_DB_NAME"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Seconds before a cached recommendation list expires regardless of
	// interaction fingerprint.
	RecommendCacheTTL int `mapstructure:"RECOMMEND_CACHE_TTL"`

	// Secret for validating bearer tokens minted by the external auth
	// provider.
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`

	// Comma-separated principal ids allowed to read the feedback inbox.
	AdminPrincipals string `mapstructure:"ADMIN_PRINCIPALS"`

	SteamStoreAPIBase  string `mapstructure:"STEAM_STORE_API_BASE"`
	SteamAppListURL    string `mapstructure:"STEAM_APP_LIST_URL"`
	SyncRequestDelayMS int    `mapstructure:"SYNC_REQUEST_DELAY_MS"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal("Can't find the file .env : ", err)
	}

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatal("Environment can't be loaded: ", err)
	}

	if env.AppEnv == "development" {
		log.Println("The App is running in development env")
	}

	if env.ContextTimeout <= 0 {
		env.ContextTimeout = 10
	}
	if env.RecommendCacheTTL <= 0 {
		env.RecommendCacheTTL = 600
	}
	if env.SyncRequestDelayMS <= 0 {
		env.SyncRequestDelayMS = 350
	}
	if env.SteamStoreAPIBase == "" {
		env.SteamStoreAPIBase = "https://store.steampowered.com/api"
	}
	if env.SteamAppListURL == "" {
		env.SteamAppListURL = "https://api.steampowered.com/ISteamApps/GetAppList/v2/"
	}

	return &env
}

// AdminPrincipalSet parses the configured allowlist into a lookup set.
func (env *Env) AdminPrincipalSet() map[string]bool {
	set := make(map[string]bool)
	for _, principal := range strings.Split(env.AdminPrincipals, ",") {
		principal = strings.TrimSpace(principal)
		if principal != "" {
			set[principal] = true
		}
	}
	return set
}
