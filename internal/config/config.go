package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	GoEnv string // dev/prod

	SeedDemo bool // 新規セッションにデモ在庫を入れるか
}

// Loadは環境変数
func Load() (Config, error) {
	seedDemo, err := mustParseBool("SEED_DEMO")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		GoEnv: os.Getenv("GO_ENV"),

		SeedDemo: seedDemo,
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	return cfg, nil
}

func mustParseBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, fmt.Errorf("%s is required", key)
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be bool: %w", key, err)
	}
	return b, nil
}
