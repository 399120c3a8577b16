package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig aggregates all settings for the REST application.
type RestConfig struct {
	Port           string           `mapstructure:"port" validate:"required"`
	Production     bool             `mapstructure:"production"`
	SystemName     string           `mapstructure:"system_name" validate:"required"`
	AdminEmail     string           `mapstructure:"admin_email" validate:"omitempty,email"`
	MasterToken    string           `mapstructure:"master_token"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	DataDir        string           `mapstructure:"data_dir" validate:"required"`
	Database       DatabaseSettings `mapstructure:"database"`
	Logger         LoggerSettings   `mapstructure:"logger"`
	SMTP           SMTPSettings     `mapstructure:"smtp"`
}

// Validate checks that all nested settings are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.SMTP.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig loads the REST application configuration from an optional
// YAML file and the environment. Environment variables follow the deployment
// manifest naming (PORT, PRODUCTION, SYSTEM_EMAIL, SYSTEM_EMAIL_PASSWORD,
// SMTP_SERVER, SMTP_PORT, SYSTEM_NAME, ACCESS_CODE, ADMIN_EMAIL,
// REPLY_TO_EMAIL) and take precedence over file values.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()

	setDefaults(v)
	bindEnvironment(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// ACCESS_CODE is the deployment manifest's name for the master token.
	if cfg.MasterToken == "" {
		cfg.MasterToken = v.GetString("access_code")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("production", false)
	v.SetDefault("system_name", "Therapeutic Companion System")
	v.SetDefault("data_dir", "therapy_data")
	v.SetDefault("allowed_origins", []string{"*"})

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "therapy_data/companion.db")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	v.SetDefault("smtp.server", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
}

func bindEnvironment(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit bindings for the deployment manifest's variable names, which
	// do not follow the nested key layout.
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("production", "PRODUCTION")
	_ = v.BindEnv("system_name", "SYSTEM_NAME")
	_ = v.BindEnv("admin_email", "ADMIN_EMAIL")
	_ = v.BindEnv("master_token", "MASTER_TOKEN")
	_ = v.BindEnv("access_code", "ACCESS_CODE")
	_ = v.BindEnv("allowed_origins", "ALLOWED_ORIGINS")
	_ = v.BindEnv("data_dir", "DATA_DIR")
	_ = v.BindEnv("database.type", "DATABASE_TYPE")
	_ = v.BindEnv("database.dsn", "DATABASE_DSN")
	_ = v.BindEnv("database.name", "DATABASE_NAME")
	_ = v.BindEnv("smtp.sender_email", "SYSTEM_EMAIL")
	_ = v.BindEnv("smtp.sender_password", "SYSTEM_EMAIL_PASSWORD")
	_ = v.BindEnv("smtp.server", "SMTP_SERVER")
	_ = v.BindEnv("smtp.port", "SMTP_PORT")
	_ = v.BindEnv("smtp.reply_to", "REPLY_TO_EMAIL")
}
