package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"aquamanager/internal/model"
	"aquamanager/pkg/config"
	"aquamanager/pkg/jwt"
	"aquamanager/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	var (
		role    string
		subject string
		ttl     time.Duration
	)
	flag.StringVar(&role, "role", model.RoleViewer, "Role to issue the token for (viewer, clerk, manager)")
	flag.StringVar(&subject, "subject", "", "Who the token is for, e.g. front-desk-tablet")
	flag.DurationVar(&ttl, "ttl", 0, "Token lifetime (default AQUA_TOKEN_TTL)")
	flag.Parse()

	log := logger.New("info", "console")
	defer func() { _ = log.Sync() }()

	// 1. Load the signing key
	cfg := config.Read()
	if cfg.APIKey == "" {
		log.Fatal("invalid configuration", zap.Error(config.ErrMissingAPIKey))
	}
	if ttl <= 0 {
		ttl = cfg.TokenTTL
	}

	// 2. Resolve the role
	r, ok := model.FindRole(role)
	if !ok {
		codes := make([]string, 0, len(model.DefaultRoles))
		for _, d := range model.DefaultRoles {
			codes = append(codes, d.Code)
		}
		log.Fatal("unknown role", zap.String("role", role), zap.String("available", strings.Join(codes, ", ")))
	}
	if strings.TrimSpace(subject) == "" {
		subject = r.Code
	}

	// 3. Sign
	token, err := jwt.GenerateToken([]byte(cfg.APIKey), subject, r.Code, r.Privileges, ttl)
	if err != nil {
		log.Fatal("failed to sign token", zap.Error(err))
	}

	log.Info("token issued",
		zap.String("subject", subject),
		zap.String("role", r.Code),
		zap.Int("privileges", len(r.Privileges)),
		zap.Time("expires_at", time.Now().Add(ttl)),
	)
	fmt.Fprintln(os.Stdout, token)
}
