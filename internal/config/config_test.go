package config_test

import (
	"testing"

	"github.com/malekian/snipemcp/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.HTTPTimeoutSeconds, convey.ShouldEqual, 30)
			convey.So(cfg.LabelSavePath, convey.ShouldEqual, "/tmp/asset_labels.pdf")
			convey.So(cfg.ListLimit, convey.ShouldEqual, 50)
			convey.So(cfg.SnipeITURL, convey.ShouldBeEmpty)
			convey.So(cfg.SnipeITToken, convey.ShouldBeEmpty)
			convey.So(cfg.MetricsAddr, convey.ShouldBeEmpty)
		})
	})
}
