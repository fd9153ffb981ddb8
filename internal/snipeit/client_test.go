package snipeit_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/malekian/snipemcp/internal/snipeit"
)

// newTestClient starts a test server and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) *snipeit.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := snipeit.New(ts.URL, "test-token")
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}
	return client
}

func TestNew(t *testing.T) {
	Convey("Given client construction", t, func() {
		Convey("When the URL or token is missing", func() {
			_, err := snipeit.New("", "token")
			So(errors.Is(err, snipeit.ErrNotConfigured), ShouldBeTrue)

			_, err = snipeit.New("https://inventory.example.com", "")
			So(errors.Is(err, snipeit.ErrNotConfigured), ShouldBeTrue)
		})

		Convey("When both are provided", func() {
			client, err := snipeit.New("https://inventory.example.com", "token")
			So(err, ShouldBeNil)
			So(client, ShouldNotBeNil)
			So(client.Assets, ShouldNotBeNil)
			So(client.Consumables, ShouldNotBeNil)
			So(client.Maintenances, ShouldNotBeNil)
		})
	})
}

func TestRequestHeaders(t *testing.T) {
	Convey("Given a client issuing a request", t, func() {
		var gotAuth, gotAccept, gotRequestID string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotAccept = r.Header.Get("Accept")
			gotRequestID = r.Header.Get("X-Request-ID")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 1, "asset_tag": "A-1"}`))
		}))

		_, err := client.Assets.Get(context.Background(), 1)

		Convey("Then auth and tracing headers should be set", func() {
			So(err, ShouldBeNil)
			So(gotAuth, ShouldEqual, "Bearer test-token")
			So(gotAccept, ShouldEqual, "application/json")
			So(gotRequestID, ShouldNotBeEmpty)
		})
	})
}

func TestStatusMapping(t *testing.T) {
	Convey("Given upstream HTTP failures", t, func() {
		cases := []struct {
			status int
			want   error
		}{
			{http.StatusUnauthorized, snipeit.ErrAuth},
			{http.StatusForbidden, snipeit.ErrAuth},
			{http.StatusNotFound, snipeit.ErrNotFound},
			{http.StatusTooManyRequests, snipeit.ErrRateLimited},
			{http.StatusInternalServerError, snipeit.ErrAPI},
		}

		for _, tc := range cases {
			status := tc.status
			want := tc.want
			Convey(http.StatusText(status)+" should map to the right kind", func() {
				client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(status)
				}))
				_, err := client.Assets.Get(context.Background(), 7)
				So(errors.Is(err, want), ShouldBeTrue)
			})
		}
	})
}

func TestEnvelopeMapping(t *testing.T) {
	Convey("Given HTTP 200 responses carrying a status envelope", t, func() {
		Convey("When the envelope reports a validation error", func() {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"error","messages":{"model_id":["The selected model is invalid."]},"payload":null}`))
			}))
			modelID, statusID := 99, 1
			_, err := client.Assets.Create(context.Background(), snipeit.AssetParams{ModelID: &modelID, StatusID: &statusID})

			So(errors.Is(err, snipeit.ErrValidation), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "model_id")
		})

		Convey("When the envelope reports a missing record", func() {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"error","messages":"Asset not found","payload":null}`))
			}))
			err := client.Assets.Delete(context.Background(), 404)

			So(errors.Is(err, snipeit.ErrNotFound), ShouldBeTrue)
		})

		Convey("When the envelope reports success with a payload", func() {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"success","messages":"Asset created","payload":{"id":12,"asset_tag":"A-12","name":"laptop"}}`))
			}))
			modelID, statusID := 3, 1
			asset, err := client.Assets.Create(context.Background(), snipeit.AssetParams{ModelID: &modelID, StatusID: &statusID})

			So(err, ShouldBeNil)
			So(asset.ID, ShouldEqual, 12)
			So(asset.AssetTag, ShouldEqual, "A-12")
			So(asset.Name, ShouldEqual, "laptop")
		})

		Convey("When a GET reports a missing record via the envelope", func() {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"error","messages":"Asset does not exist.","payload":null}`))
			}))
			asset, err := client.Assets.Get(context.Background(), 999)

			So(asset, ShouldBeNil)
			So(errors.Is(err, snipeit.ErrNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "Asset does not exist")
		})

		Convey("When a GET by tag reports a missing record via the envelope", func() {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"error","messages":"Asset not found","payload":null}`))
			}))
			asset, err := client.Assets.GetByTag(context.Background(), "A-999")

			So(asset, ShouldBeNil)
			So(errors.Is(err, snipeit.ErrNotFound), ShouldBeTrue)
		})

		Convey("When a GET reports any other error via the envelope", func() {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"error","messages":"You do not have permission to view consumables.","payload":null}`))
			}))
			_, err := client.Consumables.Get(context.Background(), 3)

			So(errors.Is(err, snipeit.ErrValidation), ShouldBeTrue)
		})

		Convey("When the envelope payload is null", func() {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"success","messages":"Asset deleted","payload":null}`))
			}))
			So(client.Assets.Delete(context.Background(), 12), ShouldBeNil)
		})
	})
}

func TestKind(t *testing.T) {
	Convey("Given error kinds", t, func() {
		So(snipeit.Kind(snipeit.ErrNotConfigured), ShouldEqual, "not_configured")
		So(snipeit.Kind(snipeit.ErrAuth), ShouldEqual, "auth")
		So(snipeit.Kind(snipeit.ErrNotFound), ShouldEqual, "not_found")
		So(snipeit.Kind(snipeit.ErrRateLimited), ShouldEqual, "rate_limited")
		So(snipeit.Kind(snipeit.ErrValidation), ShouldEqual, "validation")
		So(snipeit.Kind(snipeit.ErrDecode), ShouldEqual, "decode")
		So(snipeit.Kind(snipeit.ErrTransport), ShouldEqual, "transport")
		So(snipeit.Kind(snipeit.ErrAPI), ShouldEqual, "api")
		So(snipeit.Kind(errors.New("boom")), ShouldEqual, "unknown")
	})
}
