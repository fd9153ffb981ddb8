package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/malekian/snipemcp/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_LoadDefaults(t *testing.T) {
	convey.Convey("Given no file and no env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		convey.Convey("Then defaults should be returned", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.HTTPTimeoutSeconds, convey.ShouldEqual, 30)
		})
	})
}

func TestConfig_LoadEnv(t *testing.T) {
	convey.Convey("Given env overrides", t, func() {
		t.Setenv("SNIPEMCP_SNIPEIT_URL", "https://inventory.example.com")
		t.Setenv("SNIPEMCP_SNIPEIT_TOKEN", "secret-token")
		t.Setenv("SNIPEMCP_LOG_LEVEL", "debug")
		t.Setenv("SNIPEMCP_LIST_LIMIT", "25")

		cfg, err := config.Load(context.Background())

		convey.Convey("Then env values should win over defaults", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.SnipeITURL, convey.ShouldEqual, "https://inventory.example.com")
			convey.So(cfg.SnipeITToken, convey.ShouldEqual, "secret-token")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			convey.So(cfg.ListLimit, convey.ShouldEqual, 25)
		})
	})
}

func TestConfig_LoadFile(t *testing.T) {
	convey.Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		data := []byte("snipeit_url: https://assets.example.org\nmetrics_addr: \":9090\"\n")
		convey.So(os.WriteFile(path, data, 0o600), convey.ShouldBeNil)
		t.Setenv("SNIPEMCP_CONFIG", path)

		convey.Convey("Then file values should be applied", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.SnipeITURL, convey.ShouldEqual, "https://assets.example.org")
			convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9090")
		})

		convey.Convey("And env should still win over file", func() {
			t.Setenv("SNIPEMCP_SNIPEIT_URL", "https://other.example.org")
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.SnipeITURL, convey.ShouldEqual, "https://other.example.org")
		})
	})
}

func TestConfig_LoadInvalid(t *testing.T) {
	convey.Convey("Given a URL without a scheme", t, func() {
		t.Setenv("SNIPEMCP_SNIPEIT_URL", "inventory.example.com")
		_, err := config.Load(context.Background())
		convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
	})
}

func TestConfig_LoadBadTimeout(t *testing.T) {
	convey.Convey("Given a non-positive timeout", t, func() {
		t.Setenv("SNIPEMCP_HTTP_TIMEOUT_SECONDS", "0")
		_, err := config.Load(context.Background())
		convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
	})
}

func TestConfig_LoadMissingFile(t *testing.T) {
	convey.Convey("Given a config path that does not exist", t, func() {
		t.Setenv("SNIPEMCP_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := config.Load(context.Background())
		convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
	})
}
