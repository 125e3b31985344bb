package endpoint

import (
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Wilsonthoma/Ecommerce-sub002/client"
	"github.com/Wilsonthoma/Ecommerce-sub002/config"
	"github.com/Wilsonthoma/Ecommerce-sub002/internal/testutil"
	testrest "github.com/Wilsonthoma/Ecommerce-sub002/internal/testutil/rest"
	e "github.com/Wilsonthoma/Ecommerce-sub002/rest/errors"
	"github.com/Wilsonthoma/Ecommerce-sub002/rest/models"
	"github.com/Wilsonthoma/Ecommerce-sub002/types"
)

var _ = Describe("Backoffice", func() {
	var storeClient *client.StoreClientMock
	var cfg *BackofficeConfig
	var routes []types.Route

	BeforeEach(func() {
		storeClient = client.NewStoreClientMock()
		cfg = NewEndpointConfigWithLogger(testutil.TestLogger(), "http://store.local")
		routes = cfg.newEndpointWithClient(storeClient).Routes(testrest.Prefix)
	})

	stubProducts := func() {
		storeClient.
			On("List", "products", 1, client.DefaultFetchLimit).
			Return(testutil.Products(), nil)
	}

	Describe("GET screen", func() {
		It("renders the filtered and sorted page", func() {
			stubProducts()

			var response models.ScreenResponse
			code := testrest.ExecuteGet(routes,
				"/v1/screens/%s?status=active&sort=price&dir=asc", &response, "products")

			Expect(code).To(Equal(http.StatusOK))
			Expect(response.TotalItems).To(Equal(2))
			Expect(response.Rows).To(HaveLen(2))
			Expect(response.Rows[0].Record["id"]).To(Equal(float64(1)))
			Expect(response.Rows[1].Record["id"]).To(Equal(float64(3)))
			Expect(response.FetchFailed).To(BeFalse())
			Expect(response.Columns).ToNot(BeEmpty())
		})

		It("matches the search query across configured fields", func() {
			stubProducts()

			var response models.ScreenResponse
			testrest.ExecuteGet(routes, "/v1/screens/%s?q=electronics", &response, "products")

			Expect(response.TotalItems).To(Equal(1))
			Expect(response.Rows[0].Record["name"]).To(Equal("Gadget"))
		})

		It("renders an empty set with zeroed stats when the store is down", func() {
			storeClient.
				On("List", "products", 1, client.DefaultFetchLimit).
				Return(nil, e.NewUpstreamError("store down", http.StatusBadGateway))

			var response models.ScreenResponse
			code := testrest.ExecuteGet(routes, "/v1/screens/%s", &response, "products")

			Expect(code).To(Equal(http.StatusOK))
			Expect(response.FetchFailed).To(BeTrue())
			Expect(response.TotalItems).To(BeZero())
			Expect(response.Rows).To(BeEmpty())
		})

		It("rejects an unknown screen", func() {
			var modelError models.ModelError
			code := testrest.ExecuteGet(routes, "/v1/screens/%s", &modelError, "warehouses")

			Expect(code).To(Equal(http.StatusNotFound))
			Expect(modelError.Description).To(ContainSubstring("warehouses"))
		})

		It("rejects a page size that is not offered", func() {
			var modelError models.ModelError
			code := testrest.ExecuteGet(routes, "/v1/screens/%s?page_size=33", &modelError, "products")

			Expect(code).To(Equal(http.StatusBadRequest))
		})

		It("rejects sorting by an unknown column", func() {
			var modelError models.ModelError
			code := testrest.ExecuteGet(routes, "/v1/screens/%s?sort=shoe_size", &modelError, "products")

			Expect(code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST selection", func() {
		It("selects all filtered rows and reports partial selection after a toggle", func() {
			stubProducts()

			var response models.ScreenResponse
			testrest.ExecuteGet(routes, "/v1/screens/%s", &response, "products")

			code := testrest.ExecutePost(routes, "/v1/screens/%s/selection",
				`{"action": "select_all"}`, &response, "products")
			Expect(code).To(Equal(http.StatusOK))
			Expect(response.SelectedCount).To(Equal(3))
			Expect(response.Indeterminate).To(BeFalse())

			testrest.ExecutePost(routes, "/v1/screens/%s/selection",
				`{"action": "toggle", "id": "1"}`, &response, "products")
			Expect(response.SelectedCount).To(Equal(2))
			Expect(response.Indeterminate).To(BeTrue())

			testrest.ExecutePost(routes, "/v1/screens/%s/selection",
				`{"action": "clear"}`, &response, "products")
			Expect(response.SelectedCount).To(BeZero())
			Expect(response.Indeterminate).To(BeFalse())
		})

		It("requires an id for toggle", func() {
			var modelError models.ModelError
			code := testrest.ExecutePost(routes, "/v1/screens/%s/selection",
				`{"action": "toggle"}`, &modelError, "products")

			Expect(code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST bulk", func() {
		It("reports one result per id instead of an aggregate failure", func() {
			storeClient.
				On("Update", "products", "1", map[string]interface{}{"status": "archived"}).
				Return(nil)
			storeClient.
				On("Update", "products", "2", map[string]interface{}{"status": "archived"}).
				Return(errors.New("record locked"))

			var response models.BulkResponse
			code := testrest.ExecutePost(routes, "/v1/screens/%s/bulk",
				`{"action": "set_status", "ids": ["1", "2"], "fields": {"status": "archived"}}`,
				&response, "products")

			Expect(code).To(Equal(http.StatusOK))
			Expect(response.Results).To(HaveLen(2))
			Expect(response.Results[0].Success).To(BeTrue())
			Expect(response.Results[1].Success).To(BeFalse())
			Expect(response.Results[1].Error).To(ContainSubstring("record locked"))
			Expect(response.Succeeded).To(Equal(1))
			Expect(response.Failed).To(Equal(1))
		})

		It("deletes each id through the store client", func() {
			storeClient.On("Delete", "products", "1").Return(nil)
			storeClient.On("Delete", "products", "3").Return(nil)

			var response models.BulkResponse
			code := testrest.ExecutePost(routes, "/v1/screens/%s/bulk",
				`{"action": "delete", "ids": ["1", "3"]}`, &response, "products")

			Expect(code).To(Equal(http.StatusOK))
			Expect(response.Succeeded).To(Equal(2))
			Expect(response.Failed).To(BeZero())
			storeClient.AssertExpectations(GinkgoT())
		})

		It("rejects a request without ids", func() {
			var modelError models.ModelError
			code := testrest.ExecutePost(routes, "/v1/screens/%s/bulk",
				`{"action": "delete"}`, &modelError, "products")

			Expect(code).To(Equal(http.StatusBadRequest))
			Expect(modelError.Description).ToNot(BeEmpty())
		})

		It("rejects set_status without a target status", func() {
			var modelError models.ModelError
			code := testrest.ExecutePost(routes, "/v1/screens/%s/bulk",
				`{"action": "set_status", "ids": ["1"]}`, &modelError, "products")

			Expect(code).To(Equal(http.StatusBadRequest))
		})

		It("rejects actions disabled by configuration", func() {
			cfg.WithBulkActions(config.BulkSetStatus)
			routes = cfg.newEndpointWithClient(storeClient).Routes(testrest.Prefix)

			var modelError models.ModelError
			code := testrest.ExecutePost(routes, "/v1/screens/%s/bulk",
				`{"action": "delete", "ids": ["1"]}`, &modelError, "products")

			Expect(code).To(Equal(http.StatusBadRequest))
			Expect(modelError.Description).To(ContainSubstring("not enabled"))
		})
	})

	Describe("record mutations", func() {
		It("passes a partial update through to the store", func() {
			storeClient.
				On("Update", "products", "1", map[string]interface{}{"price": 19.5}).
				Return(nil)

			var response models.MutationResponse
			code := testrest.ExecutePatch(routes, "/v1/screens/%s/records/%s",
				`{"fields": {"price": 19.5}}`, &response, "products", "1")

			Expect(code).To(Equal(http.StatusOK))
			Expect(response.Success).To(BeTrue())
		})

		It("maps a missing record to 404", func() {
			storeClient.
				On("Update", "products", "9", map[string]interface{}{"status": "active"}).
				Return(e.NewNotFoundError("resource not found"))

			var modelError models.ModelError
			code := testrest.ExecutePatch(routes, "/v1/screens/%s/records/%s",
				`{"fields": {"status": "active"}}`, &modelError, "products", "9")

			Expect(code).To(Equal(http.StatusNotFound))
		})

		It("deletes a record", func() {
			storeClient.On("Delete", "products", "2").Return(nil)

			code := testrest.ExecuteDelete(routes, "/v1/screens/%s/records/%s", "products", "2")

			Expect(code).To(Equal(http.StatusNoContent))
			storeClient.AssertExpectations(GinkgoT())
		})
	})

	Describe("auth boundary", func() {
		BeforeEach(func() {
			cfg.WithAdminTokens(map[string]string{"token1": "ada"})
			routes = cfg.newEndpointWithClient(storeClient).Routes(testrest.Prefix)
		})

		It("rejects requests without a recognized token", func() {
			var modelError models.ModelError
			code := testrest.ExecuteGet(routes, "/v1/screens/%s", &modelError, "products")

			Expect(code).To(Equal(http.StatusUnauthorized))
		})

		It("serves authenticated requests", func() {
			stubProducts()

			var response models.ScreenResponse
			code := testrest.ExecuteGetWithToken(routes, "/v1/screens/%s", "token1", &response, "products")

			Expect(code).To(Equal(http.StatusOK))
			Expect(response.TotalItems).To(Equal(3))
		})
	})
})
