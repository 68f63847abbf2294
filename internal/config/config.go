package config

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr     string
	GRPCAddr     string
	PostgresDSN  string
	DBMaxConns   int32
	JWTSecret    string
	JWTTTL       time.Duration
	UploadDir    string
	Heartbeat    time.Duration
	VerifyTotals bool
	SMTP         SMTPConfig
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Enabled reports whether outgoing mail should go through SMTP.
func (s SMTPConfig) Enabled() bool { return s.Host != "" }

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("GRPC_PORT", "50051")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "postgres")
	v.SetDefault("DB_NAME", "ropa_market")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_TTL", "168h")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("SSE_HEARTBEAT", "25s")
	v.SetDefault("VERIFY_TOTALS", true)
	v.SetDefault("SMTP_PORT", 587)
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	dsn := v.GetString("DATABASE_URL")
	if dsn == "" {
		dsn = buildDSN(v.GetString("DB_USER"), v.GetString("DB_PASS"),
			v.GetString("DB_HOST"), v.GetString("DB_PORT"), v.GetString("DB_NAME"))
	}
	cfg := Config{
		HTTPAddr:     ":" + v.GetString("PORT"),
		GRPCAddr:     ":" + v.GetString("GRPC_PORT"),
		PostgresDSN:  dsn,
		DBMaxConns:   v.GetInt32("DB_MAX_CONNS"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTTTL:       v.GetDuration("JWT_TTL"),
		UploadDir:    v.GetString("UPLOAD_DIR"),
		Heartbeat:    v.GetDuration("SSE_HEARTBEAT"),
		VerifyTotals: v.GetBool("VERIFY_TOTALS"),
		SMTP: SMTPConfig{
			Host: v.GetString("SMTP_HOST"),
			Port: v.GetInt("SMTP_PORT"),
			User: v.GetString("SMTP_USER"),
			Pass: v.GetString("SMTP_PASS"),
			From: v.GetString("SMTP_FROM"),
		},
	}
	log.Printf("[config] PORT=%s GRPC_PORT=%s", cfg.HTTPAddr, cfg.GRPCAddr)
	log.Printf("[config] DB_HOST=%s DB_NAME=%s max_conns=%d", v.GetString("DB_HOST"), v.GetString("DB_NAME"), cfg.DBMaxConns)
	log.Printf("[config] UPLOAD_DIR=%s SSE_HEARTBEAT=%s VERIFY_TOTALS=%t smtp=%t",
		cfg.UploadDir, cfg.Heartbeat, cfg.VerifyTotals, cfg.SMTP.Enabled())
	return cfg
}

func buildDSN(user, pass, host, port, name string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pass),
		Host:     fmt.Sprintf("%s:%s", host, port),
		Path:     name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
