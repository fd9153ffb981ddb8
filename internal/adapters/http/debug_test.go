package debughttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/malekian/snipemcp/pkg/logger"
)

func TestHandleHealth(t *testing.T) {
	Convey("Given the health endpoint", t, func() {
		Convey("When requested with GET", func() {
			rec := httptest.NewRecorder()
			handleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			Convey("Then it should report ok", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldStartWith, "application/json")
				var body map[string]string
				So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
				So(body["status"], ShouldEqual, "ok")
			})
		})

		Convey("When requested with POST", func() {
			rec := httptest.NewRecorder()
			handleHealth(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestServerEndpoints(t *testing.T) {
	Convey("Given a debug server", t, func() {
		So(logger.Init(), ShouldBeNil)
		srv := New("127.0.0.1:0", logger.Get())

		Convey("Then /metrics should be registered on the mux", func() {
			rec := httptest.NewRecorder()
			srv.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			So(rec.Code, ShouldEqual, http.StatusOK)
		})

		Convey("And shutdown should complete when the context ends", func() {
			ctx, cancel := context.WithCancel(context.Background())
			srv.Start(ctx)
			cancel()
		})
	})
}
