package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	DatabaseURL   string
	HTTPPort      int
	SeedPath      string
	ReminderCron  string
	TelegramToken string
	AdminChatID   int64
}

var instance *ServerConfig
var once sync.Once

func GetServerConfig() *ServerConfig {
	once.Do(func() {
		instance = &ServerConfig{}

		// A missing .env is fine in production; variables then come from
		// the environment.
		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %s", err.Error())
		}

		instance.DatabaseURL = getEnv("DATABASE_URL", "")
		if instance.DatabaseURL == "" {
			logrus.Fatal("could not get database url")
		}

		instance.HTTPPort = int(getEnvAsInt("HTTP_PORT", 8080))
		instance.SeedPath = getEnv("SEED_PATH", "")
		instance.ReminderCron = getEnv("REMINDER_CRON", "0 18 * * *")

		// Telegram is optional; without a token reminders go to the log.
		instance.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
		instance.AdminChatID = getEnvAsInt("ADMIN_CHAT_ID", 0)
		if instance.TelegramToken != "" && instance.AdminChatID == 0 {
			logrus.Fatal("TELEGRAM_BOT_TOKEN set but ADMIN_CHAT_ID missing")
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
