package snipeit_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/malekian/snipemcp/internal/snipeit"
)

func TestConsumableCRUD(t *testing.T) {
	Convey("Given the consumables endpoints", t, func() {
		var gotPath, gotMethod string
		var gotBody map[string]any
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			gotBody = nil
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			switch r.Method {
			case http.MethodGet:
				if r.URL.Path == "/api/v1/consumables" {
					w.Write([]byte(`{"total":1,"rows":[{"id":3,"name":"Toner","qty":12,"remaining":4}]}`))
					return
				}
				w.Write([]byte(`{"id":3,"name":"Toner","qty":12,"remaining":4,"min_amt":2}`))
			default:
				w.Write([]byte(`{"status":"success","messages":"ok","payload":{"id":3,"name":"Toner","qty":12}}`))
			}
		}))
		ctx := context.Background()

		Convey("Get should decode a single consumable", func() {
			c, err := client.Consumables.Get(ctx, 3)
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/api/v1/consumables/3")
			So(c.Name, ShouldEqual, "Toner")
			So(c.Remaining, ShouldEqual, 4)
			So(c.MinAmt, ShouldEqual, 2)
		})

		Convey("List should decode the paged rows", func() {
			list, err := client.Consumables.List(ctx, snipeit.ListOptions{Limit: 50})
			So(err, ShouldBeNil)
			So(list.Total, ShouldEqual, 1)
			So(list.Rows[0].Qty, ShouldEqual, 12)
		})

		Convey("Create should post only the set fields", func() {
			name, qty, catID := "Toner", 12, 6
			c, err := client.Consumables.Create(ctx, snipeit.ConsumableParams{
				Name:       &name,
				Qty:        &qty,
				CategoryID: &catID,
			})
			So(err, ShouldBeNil)
			So(gotMethod, ShouldEqual, http.MethodPost)
			So(gotBody["name"], ShouldEqual, "Toner")
			So(gotBody["qty"], ShouldEqual, 12)
			So(gotBody["category_id"], ShouldEqual, 6)
			_, hasLocation := gotBody["location_id"]
			So(hasLocation, ShouldBeFalse)
			So(c.ID, ShouldEqual, 3)
		})

		Convey("Update should patch the record", func() {
			qty := 20
			_, err := client.Consumables.Update(ctx, 3, snipeit.ConsumableParams{Qty: &qty})
			So(err, ShouldBeNil)
			So(gotMethod, ShouldEqual, http.MethodPatch)
			So(gotPath, ShouldEqual, "/api/v1/consumables/3")
			So(gotBody["qty"], ShouldEqual, 20)
		})

		Convey("Delete should call the delete endpoint", func() {
			So(client.Consumables.Delete(ctx, 3), ShouldBeNil)
			So(gotMethod, ShouldEqual, http.MethodDelete)
			So(gotPath, ShouldEqual, "/api/v1/consumables/3")
		})
	})
}

func TestMaintenanceCreate(t *testing.T) {
	Convey("Given the maintenances endpoint", t, func() {
		var gotPath string
		var gotBody map[string]any
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"success","messages":"created","payload":{"id":11,"title":"Fan swap"}}`))
		}))

		Convey("When creating a maintenance record", func() {
			cost := 42.5
			created, err := client.Maintenances.Create(context.Background(), 9, snipeit.MaintenanceParams{
				AssetImprovement: "Repair",
				SupplierID:       2,
				Title:            "Fan swap",
				Cost:             &cost,
				StartDate:        "2026-08-01",
			})

			Convey("Then the payload should carry the asset and details", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/api/v1/maintenances")
				So(gotBody["asset_id"], ShouldEqual, 9)
				So(gotBody["asset_improvement"], ShouldEqual, "Repair")
				So(gotBody["supplier_id"], ShouldEqual, 2)
				So(gotBody["title"], ShouldEqual, "Fan swap")
				So(gotBody["cost"], ShouldEqual, 42.5)
				So(gotBody["start_date"], ShouldEqual, "2026-08-01")
				_, hasCompletion := gotBody["completion_date"]
				So(hasCompletion, ShouldBeFalse)
				So(created["title"], ShouldEqual, "Fan swap")
			})
		})
	})
}
