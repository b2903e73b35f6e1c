package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamageClientCarriesWarehouseHeader(t *testing.T) {
	var gotHeader string
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Dc-Id")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(DamageRequestPage{
			Content:       []DamageRequest{{ID: 1, Status: "PENDING"}},
			TotalElements: 1,
		})
	}))
	defer srv.Close()

	client := NewDamageClient(srv.URL, "dc-7", nil)
	page, err := client.List(context.Background(), DamageListFilter{Page: 0, Status: "PENDING"})
	require.NoError(t, err)

	assert.Equal(t, "dc-7", gotHeader)
	assert.Equal(t, "/damage-assessment/item-damage-request/list", gotPath)
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(1), page.Content[0].ID)
}

func TestDamageClientCreateValidation(t *testing.T) {
	client := NewDamageClient("http://unused", "dc-7", nil)

	_, err := client.Create(context.Background(), DamageRequest{CustomerID: "cust-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
}

func TestDamageClientApprove(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/damage-assessment/item-damage-request/4/approve", r.URL.Path)
		_ = json.NewEncoder(w).Encode(DamageRequest{ID: 4, Status: "APPROVED"})
	}))
	defer srv.Close()

	client := NewDamageClient(srv.URL, "dc-7", nil)
	updated, err := client.Approve(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", updated.Status)
}

func TestProductClientReservedProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/cust-1/reserved-products", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":7,"name":"Bath towel"},{"id":8,"name":"Bed sheet"}]`))
	}))
	defer srv.Close()

	client := NewProductClient(srv.URL, nil)
	products, err := client.ReservedProductsByCustomer(context.Background(), "cust-1")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Bath towel", products[0].Name)
}

func TestUploadClientSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "tear.jpg", header.Filename)

		_, _ = w.Write([]byte(`{"url":"https://files/tear.jpg"}`))
	}))
	defer srv.Close()

	client := NewUploadClient(srv.URL, nil)
	url, err := client.UploadImage(context.Background(), "tear.jpg", []byte{0xFF, 0xD8})
	require.NoError(t, err)
	assert.Equal(t, "https://files/tear.jpg", url)
}

func TestAPIErrorSurfacesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"inventory already reserved"}`))
	}))
	defer srv.Close()

	client := NewProductClient(srv.URL, nil)
	_, err := client.ReservedProductsByCustomer(context.Background(), "cust-1")
	require.Error(t, err)
	assert.Equal(t, "inventory already reserved", err.Error())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}
