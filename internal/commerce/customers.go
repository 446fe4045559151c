package commerce

import (
	"context"
	"encoding/json"
	"fmt"
)

// MetafieldInput is a typed key/value extension attribute attached to a
// back-office entity. OwnerID is only set for metafieldsSet calls; customer
// creation attaches metafields inline.
type MetafieldInput struct {
	OwnerID   string `json:"ownerId,omitempty"`
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}

// CustomerCreateInput carries the normalized registration fields.
// Phone must already be E.164 or empty; an empty phone is omitted from the
// mutation variables rather than submitted blank.
type CustomerCreateInput struct {
	Email      string
	FirstName  string
	LastName   string
	Phone      string
	Metafields []MetafieldInput
}

// Customer is the subset of the remote customer record this system reads
// back. The record itself lives on the back office; it is never updated or
// deleted from here.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

const customerCreateMutation = `
mutation customerCreate($input: CustomerInput!) {
  customerCreate(input: $input) {
    customer { id email phone }
    userErrors { field message }
  }
}`

const activationURLMutation = `
mutation customerGenerateAccountActivationUrl($customerId: ID!) {
  customerGenerateAccountActivationUrl(customerId: $customerId) {
    accountActivationUrl
    userErrors { field message }
  }
}`

// CreateCustomer submits the customer-create mutation. A response carrying
// userErrors and no customer id returns a *GatewayError with that list.
func (c *Client) CreateCustomer(ctx context.Context, input CustomerCreateInput) (*Customer, error) {
	vars := map[string]interface{}{
		"input": customerInputVariables(input),
	}

	data, err := c.Execute(ctx, customerCreateMutation, vars)
	if err != nil {
		return nil, err
	}

	var payload struct {
		CustomerCreate struct {
			Customer   *Customer   `json:"customer"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"customerCreate"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("commerce: decode customerCreate: %w", err)
	}

	if payload.CustomerCreate.Customer == nil || payload.CustomerCreate.Customer.ID == "" {
		gwErr := userErrorsToGatewayError("customerCreate", payload.CustomerCreate.UserErrors)
		if gwErr == nil {
			gwErr = &GatewayError{Operation: "customerCreate", Messages: []string{"no customer returned"}}
		}
		return nil, gwErr
	}

	return payload.CustomerCreate.Customer, nil
}

// GenerateAccountActivationURL mints a one-time activation link scoped to
// the given customer id.
func (c *Client) GenerateAccountActivationURL(ctx context.Context, customerID string) (string, error) {
	vars := map[string]interface{}{"customerId": customerID}

	data, err := c.Execute(ctx, activationURLMutation, vars)
	if err != nil {
		return "", err
	}

	var payload struct {
		CustomerGenerateAccountActivationURL struct {
			AccountActivationURL string      `json:"accountActivationUrl"`
			UserErrors           []UserError `json:"userErrors"`
		} `json:"customerGenerateAccountActivationUrl"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("commerce: decode activation url: %w", err)
	}

	result := payload.CustomerGenerateAccountActivationURL
	if result.AccountActivationURL == "" {
		gwErr := userErrorsToGatewayError("customerGenerateAccountActivationUrl", result.UserErrors)
		if gwErr == nil {
			gwErr = &GatewayError{Operation: "customerGenerateAccountActivationUrl", Messages: []string{"no activation url returned"}}
		}
		return "", gwErr
	}

	return result.AccountActivationURL, nil
}

func customerInputVariables(input CustomerCreateInput) map[string]interface{} {
	vars := map[string]interface{}{
		"email":     input.Email,
		"firstName": input.FirstName,
		"lastName":  input.LastName,
	}
	if input.Phone != "" {
		vars["phone"] = input.Phone
	}
	if len(input.Metafields) > 0 {
		metafields := make([]map[string]interface{}, 0, len(input.Metafields))
		for _, m := range input.Metafields {
			metafields = append(metafields, map[string]interface{}{
				"namespace": m.Namespace,
				"key":       m.Key,
				"type":      m.Type,
				"value":     m.Value,
			})
		}
		vars["metafields"] = metafields
	}
	return vars
}
