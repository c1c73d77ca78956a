package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("期望默认端口 3000，实际=%d", cfg.Server.Port)
	}
	if cfg.Database.Path != "cadre_assessment.db" {
		t.Errorf("期望默认数据库文件 cadre_assessment.db，实际=%s", cfg.Database.Path)
	}
	if cfg.Auth.AccessTokenTTL != 12*time.Hour {
		t.Errorf("期望默认 Token 有效期 12h，实际=%s", cfg.Auth.AccessTokenTTL)
	}
	if len(cfg.Server.CORS.AllowOrigins) != 1 || cfg.Server.CORS.AllowOrigins[0] != "*" {
		t.Errorf("期望默认允许所有来源，实际=%v", cfg.Server.CORS.AllowOrigins)
	}
}

func TestLoad_PortEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("期望 PORT 环境变量生效，实际=%d", cfg.Server.Port)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 9000\ndb:\n  path: /tmp/a.db\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 9000 || cfg.Database.Path != "/tmp/a.db" || cfg.Log.Level != "debug" {
		t.Errorf("配置文件未生效: %+v", cfg)
	}
}

func TestValidate_RequireTokenNeedsSecret(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 3000},
		Database: DatabaseConfig{Path: "x.db"},
		Auth:     AuthConfig{RequireToken: true, JWTSecret: "short", AccessTokenTTL: time.Hour},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("期望短密钥校验失败")
	}

	cfg.Auth.JWTSecret = "a-long-enough-secret-value"
	if err := cfg.Validate(); err != nil {
		t.Errorf("期望校验通过: %v", err)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{Path: "data.db"}
	if got := cfg.DSN(); got != "file:data.db?_busy_timeout=5000" {
		t.Errorf("DSN 不符: %s", got)
	}

	cfg.BusyTimeoutMS = 100
	if got := cfg.DSN(); got != "file:data.db?_busy_timeout=100" {
		t.Errorf("DSN 不符: %s", got)
	}
}

func TestDatabaseConfig_DSNEscapesPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"data?v=1#a.db", "file:data%3Fv=1%23a.db?_busy_timeout=5000"},
		{"/var/lib/sub dir/a.db", "file:/var/lib/sub%20dir/a.db?_busy_timeout=5000"},
		{"../data/cadre_assessment.db", "file:../data/cadre_assessment.db?_busy_timeout=5000"},
	}
	for _, tt := range tests {
		cfg := &DatabaseConfig{Path: tt.path}
		if got := cfg.DSN(); got != tt.want {
			t.Errorf("路径 %q 的 DSN 期望 %s，实际 %s", tt.path, tt.want, got)
		}
	}
}
