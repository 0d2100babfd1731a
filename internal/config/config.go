package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Channel names the way a report leaves the process. The values match the CLI subcommands.
type Channel string

const (
	ChannelPrint   Channel = "print"
	ChannelTeams   Channel = "notify-teams"
	ChannelWebhook Channel = "notify-webhook"
	ChannelSlack   Channel = "notify-slack"
	ChannelEtcd    Channel = "publish-etcd"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelPrint,
		ChannelTeams,
		ChannelWebhook,
		ChannelSlack,
		ChannelEtcd:
		return true
	}
	return false
}

func (c Channel) IsWebhook() bool {
	return c == ChannelTeams || c == ChannelWebhook || c == ChannelSlack
}

// AppConfig holds what the probe looks for.
type AppConfig struct {
	Label          string `mapstructure:"label"`
	Hostname       string `mapstructure:"hostname"`
	ReportNoHealth bool   `mapstructure:"report_no_health"`
}

// LoggingConfig holds the logging-related configuration.
type LoggingConfig struct {
	Level string `mapstructure:"log_level"`
}

// DockerConfig holds container engine connection settings. An empty Host defers to DOCKER_HOST.
type DockerConfig struct {
	Host string `mapstructure:"host"`
}

// NotifyConfig selects the notification channel.
type NotifyConfig struct {
	Channel     Channel `mapstructure:"channel"`
	CallbackURL string  `mapstructure:"callback_url"`
}

// EtcdConfig holds etcd-related configuration for the publish channel.
type EtcdConfig struct {
	Endpoints   []string `mapstructure:"endpoints"`
	Prefix      string   `mapstructure:"prefix"`
	TTL         int64    `mapstructure:"ttl"`
	DialTimeout float64  `mapstructure:"dial_timeout"`
}

// Config is the top-level configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"log"`
	Docker  DockerConfig  `mapstructure:"docker"`
	Notify  NotifyConfig  `mapstructure:"notify"`
	Etcd    EtcdConfig    `mapstructure:"etcd"`
}

// New returns a viper instance with defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("app.label", "")
	v.SetDefault("app.hostname", "")
	v.SetDefault("app.report_no_health", false)
	v.SetDefault("log.log_level", "error")
	v.SetDefault("docker.host", "")
	v.SetDefault("notify.channel", string(ChannelPrint))
	v.SetDefault("notify.callback_url", "")
	v.SetDefault("etcd.endpoints", []string{"localhost:2379"})
	v.SetDefault("etcd.prefix", "/notifyhealth")
	v.SetDefault("etcd.ttl", 3600)
	v.SetDefault("etcd.dial_timeout", 2.0)

	v.SetEnvPrefix("notifyhealth")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile reads the config file at path, or config.yaml in the working directory when path is
// empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config") // Looks for config.yaml
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Load unmarshals the configuration into the Config struct and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.App.Label) == "" {
		return errors.New("a container label is required")
	}
	if !c.Notify.Channel.IsValid() {
		return fmt.Errorf("unknown notification channel %q", c.Notify.Channel)
	}
	if c.Notify.Channel.IsWebhook() && c.Notify.CallbackURL == "" {
		return fmt.Errorf("%s requires a callback url", c.Notify.Channel)
	}
	if c.Notify.Channel == ChannelEtcd {
		if len(c.Etcd.Endpoints) == 0 {
			return errors.New("publish-etcd requires at least one etcd endpoint")
		}
		if c.Etcd.TTL <= 0 {
			return fmt.Errorf("etcd ttl must be positive, got %d", c.Etcd.TTL)
		}
	}
	return nil
}
