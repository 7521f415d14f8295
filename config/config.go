package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		BaseURL    string `default:"http://localhost:8080" env:"APP_BASE_URL"`
		// адрес для отправки алертов о 5xx ответах, пусто - выключено
		ErrNotifyURL string `default:"" env:"APP_ERR_NOTIFY_URL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-recruit" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret        string `default:"" env:"JWT_SECRET"`
		AccessTTLMinutes int    `default:"30" env:"JWT_ACCESS_TTL_MINUTES"`
		RefreshTTLHours  int    `default:"168" env:"JWT_REFRESH_TTL_HOURS"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"no-reply@hr-recruit.ru" env:"SMTP_FROM"`
	}
	Sms struct {
		GatewayURL string `default:"" env:"SMS_GATEWAY_URL"`
		ApiKey     string `default:"" env:"SMS_API_KEY"`
		Sender     string `default:"HR-RECRUIT" env:"SMS_SENDER"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"hr-recruit" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	YandexGPT struct {
		ApiKey    string `default:"" env:"YANDEX_GPT_API_KEY"`
		FolderID  string `default:"" env:"YANDEX_GPT_FOLDER_ID"`
		MaxTokens int    `default:"2000" env:"YANDEX_GPT_MAX_TOKENS"`
	}
	Notify struct {
		WorkerPeriodSec int `default:"15" env:"NOTIFY_WORKER_PERIOD_SEC"`
		MaxAttempts     int `default:"3" env:"NOTIFY_MAX_ATTEMPTS"`
	}
	Meeting struct {
		LinkTemplate string `default:"https://meet.hr-recruit.ru/%v" env:"MEETING_LINK_TEMPLATE"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
