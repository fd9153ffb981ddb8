package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/malekian/snipemcp/internal/app"
	"github.com/malekian/snipemcp/internal/snipeit"
)

func TestServiceInventory(t *testing.T) {
	convey.Convey("Given an application service", t, func() {
		ctx := context.Background()

		convey.Convey("When credentials are not configured", func() {
			svc := app.New()
			convey.So(svc.Start(ctx), convey.ShouldBeNil)

			client, err := svc.Inventory(ctx)

			convey.Convey("Then Inventory should report a configuration error", func() {
				convey.So(client, convey.ShouldBeNil)
				convey.So(errors.Is(err, snipeit.ErrNotConfigured), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When credentials are configured", func() {
			svc := app.New(
				app.WithCredentials("https://inventory.example.com", "token"),
				app.WithHTTPTimeout(5*time.Second),
			)
			convey.So(svc.Start(ctx), convey.ShouldBeNil)

			first, err := svc.Inventory(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(first, convey.ShouldNotBeNil)

			convey.Convey("Then the client should be built once and reused", func() {
				second, err := svc.Inventory(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(second, convey.ShouldEqual, first)
			})
		})

		convey.Convey("When a client is injected directly", func() {
			injected, err := snipeit.New("https://inventory.example.com", "token")
			convey.So(err, convey.ShouldBeNil)

			svc := app.New(app.WithClient(injected))
			got, err := svc.Inventory(ctx)

			convey.Convey("Then Inventory should return it unchanged", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldEqual, injected)
			})
		})
	})
}
