package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(serverURL string) *Client {
	return &Client{
		endpoint:    serverURL,
		accessToken: "shpat_test_token",
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestExecuteSendsAccessTokenHeader(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	if _, err := client.Execute(context.Background(), "query { shop { name } }", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotToken != "shpat_test_token" {
		t.Fatalf("expected access token header, got %q", gotToken)
	}
}

func TestExecuteSurfacesTopLevelErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"Throttled"}]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Execute(context.Background(), "query { shop { name } }", nil)

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *GatewayError, got %v", err)
	}
	if len(gwErr.Messages) != 1 || gwErr.Messages[0] != "Throttled" {
		t.Fatalf("expected raw error list preserved, got %v", gwErr.Messages)
	}
}

func TestExecuteSurfacesNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid token"))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Execute(context.Background(), "query { shop { name } }", nil)

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *GatewayError, got %v", err)
	}
	if gwErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", gwErr.Status)
	}
}

func TestCreateCustomerOmitsEmptyPhone(t *testing.T) {
	var gotVars map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]interface{} `json:"variables"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotVars = req.Variables
		_, _ = w.Write([]byte(`{"data":{"customerCreate":{"customer":{"id":"gid://shopify/Customer/1"},"userErrors":[]}}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	customer, err := client.CreateCustomer(context.Background(), CustomerCreateInput{
		Email:     "a@b.com",
		FirstName: "A",
		LastName:  "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.ID != "gid://shopify/Customer/1" {
		t.Fatalf("unexpected customer id %q", customer.ID)
	}

	input := gotVars["input"].(map[string]interface{})
	if _, present := input["phone"]; present {
		t.Fatal("expected empty phone to be omitted from variables")
	}
}

func TestCreateCustomerNoIDReturnsUserErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"customerCreate":{"customer":null,"userErrors":[{"field":["email"],"message":"Email has already been taken"}]}}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.CreateCustomer(context.Background(), CustomerCreateInput{Email: "a@b.com"})

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *GatewayError, got %v", err)
	}
	if len(gwErr.UserErrors) != 1 || gwErr.UserErrors[0].Message != "Email has already been taken" {
		t.Fatalf("expected userErrors preserved for logging, got %+v", gwErr.UserErrors)
	}
}

func TestSetMetafieldFailsOnUserErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"metafieldsSet":{"metafields":[],"userErrors":[{"field":["ownerId"],"message":"Owner not found"}]}}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	err := client.SetMetafield(context.Background(), MetafieldInput{
		OwnerID:   "gid://shopify/Customer/1",
		Namespace: "tax_exempt_forms",
		Key:       "tax_exempt_form",
		Type:      "file_reference",
		Value:     "gid://shopify/GenericFile/1",
	})

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected userErrors to fail the call, got %v", err)
	}
}

func TestStagedUploadCreatePreservesParameterOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"stagedUploadsCreate":{"stagedTargets":[{"url":"https://bucket.example/upload","resourceUrl":"https://bucket.example/key","parameters":[{"name":"key","value":"tmp/1"},{"name":"policy","value":"abc"},{"name":"signature","value":"xyz"}]}],"userErrors":[]}}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	target, err := client.StagedUploadCreate(context.Background(), StagedUploadInput{
		Filename: "Acme Tax Exempt Form.pdf",
		MimeType: "application/pdf",
		Resource: ResourceFile,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"key", "policy", "signature"}
	if len(target.Parameters) != len(want) {
		t.Fatalf("expected %d parameters, got %d", len(want), len(target.Parameters))
	}
	for i, name := range want {
		if target.Parameters[i].Name != name {
			t.Fatalf("parameter %d: expected %q, got %q", i, name, target.Parameters[i].Name)
		}
	}
}
