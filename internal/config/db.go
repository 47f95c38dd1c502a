package config

import (
	"fmt"
)

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Address  string `mapstructure:"address"`
	DbName   string `mapstructure:"db-name"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Username == "" {
		return fmt.Errorf("db username must be set")
	}
	if cfg.Password == "" {
		return fmt.Errorf("db password must be set")
	}
	if cfg.Address == "" {
		return fmt.Errorf("db address must be set")
	}
	if cfg.DbName == "" {
		return fmt.Errorf("db name must be set")
	}

	return nil
}
