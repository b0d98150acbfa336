package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string
	HTTPAddr string

	TelegramApiToken string
	TelegramChatID   string

	LedgerUrl       string
	LedgerApiKey    string
	LedgerSecretKey string

	PriceUrl string

	LokiAddr string

	Redis *Redis
	DB    *DB
	Mongo *Mongo
}

type Redis struct {
	Addr     string
	Password string
}

type DB struct {
	Host     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Mongo struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

var ErrEnvNotFound = errors.New("err env not found")

func (a *App) loadConfig(confFileName string) error {
	var cfg Config
	var redis Redis
	var db DB
	var mongo Mongo

	err := godotenv.Load(confFileName)
	if err != nil {
		return err
	}

	cfg.LogLevel = os.Getenv("LOG_LEVEL")

	if cfg.HTTPAddr, err = cfg.set("HTTP_ADDR"); err != nil {
		return err
	}

	if cfg.TelegramApiToken, err = cfg.set("TELEGRAM_API_TOKEN"); err != nil {
		return err
	}

	if cfg.TelegramChatID, err = cfg.set("TELEGRAM_CHAT_ID"); err != nil {
		return err
	}

	if cfg.LedgerUrl, err = cfg.set("LEDGER_URL"); err != nil {
		return err
	}

	if cfg.LedgerApiKey, err = cfg.set("LEDGER_API_KEY"); err != nil {
		return err
	}

	if cfg.LedgerSecretKey, err = cfg.set("LEDGER_SECRET_KEY"); err != nil {
		return err
	}

	if cfg.PriceUrl, err = cfg.set("PRICE_URL"); err != nil {
		return err
	}

	if cfg.LokiAddr, err = cfg.set("LOKI_ADDR"); err != nil {
		return err
	}

	if redis.Addr, err = cfg.set("REDIS_ADDR"); err != nil {
		return err
	}

	redis.Password = os.Getenv("REDIS_PASSWORD")

	if db.Host, err = cfg.set("PG_HOST"); err != nil {
		return err
	}

	if db.User, err = cfg.set("PG_USER"); err != nil {
		return err
	}

	if db.Password, err = cfg.set("PG_PASSWORD"); err != nil {
		return err
	}

	if db.DBName, err = cfg.set("PG_DBNAME"); err != nil {
		return err
	}

	if db.SSLMode, err = cfg.set("PG_SSL_MODE"); err != nil {
		return err
	}

	if mongo.Host, err = cfg.set("MONGO_HOST"); err != nil {
		return err
	}

	if mongo.Port, err = cfg.set("MONGO_PORT"); err != nil {
		return err
	}

	if mongo.User, err = cfg.set("MONGO_USER"); err != nil {
		return err
	}

	if mongo.Password, err = cfg.set("MONGO_PASSWORD"); err != nil {
		return err
	}

	if mongo.DBName, err = cfg.set("MONGO_DBNAME"); err != nil {
		return err
	}

	cfg.Redis = &redis
	cfg.DB = &db
	cfg.Mongo = &mongo

	a.Config = &cfg

	return nil
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

func (m *Mongo) DSN() string {
	return fmt.Sprintf("mongodb://%s:%s", m.Host, m.Port)
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", ErrEnvNotFound
	}

	return os.Getenv(key), nil
}
