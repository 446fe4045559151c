package commerce

import (
	"context"
	"encoding/json"
	"fmt"
)

// Upload resource classes. The MIME classification of the uploaded document
// decides whether the back office stores it as an image or a generic file.
const (
	ResourceFile  = "FILE"
	ResourceImage = "IMAGE"
)

// StagedUploadInput describes the binary the back office should stage a
// signed upload target for.
type StagedUploadInput struct {
	Filename string
	MimeType string
	Resource string
}

// StagedUploadParameter is one signed form field. Order matters: the
// object-storage signature covers the header bytes, so the relay must append
// these in exactly the order supplied here.
type StagedUploadParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StagedUploadTarget is a temporary pre-signed destination for a direct
// binary upload. It is consumed exactly once by the relay; its lifetime ends
// when the physical POST completes or fails.
type StagedUploadTarget struct {
	URL         string                  `json:"url"`
	ResourceURL string                  `json:"resourceUrl"`
	Parameters  []StagedUploadParameter `json:"parameters"`
}

// FileCreateInput registers a transferred binary as a permanent file.
type FileCreateInput struct {
	OriginalSource string
	ContentType    string
	Alt            string
}

const stagedUploadsCreateMutation = `
mutation stagedUploadsCreate($input: [StagedUploadInput!]!) {
  stagedUploadsCreate(input: $input) {
    stagedTargets { url resourceUrl parameters { name value } }
    userErrors { field message }
  }
}`

const fileCreateMutation = `
mutation fileCreate($files: [FileCreateInput!]!) {
  fileCreate(files: $files) {
    files { id }
    userErrors { field message }
  }
}`

const metafieldsSetMutation = `
mutation metafieldsSet($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    metafields { id }
    userErrors { field message }
  }
}`

// StagedUploadCreate asks the back office for a signed upload target.
func (c *Client) StagedUploadCreate(ctx context.Context, input StagedUploadInput) (*StagedUploadTarget, error) {
	vars := map[string]interface{}{
		"input": []map[string]interface{}{{
			"filename":   input.Filename,
			"mimeType":   input.MimeType,
			"httpMethod": "POST",
			"resource":   input.Resource,
		}},
	}

	data, err := c.Execute(ctx, stagedUploadsCreateMutation, vars)
	if err != nil {
		return nil, err
	}

	var payload struct {
		StagedUploadsCreate struct {
			StagedTargets []StagedUploadTarget `json:"stagedTargets"`
			UserErrors    []UserError          `json:"userErrors"`
		} `json:"stagedUploadsCreate"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("commerce: decode stagedUploadsCreate: %w", err)
	}

	if len(payload.StagedUploadsCreate.StagedTargets) == 0 {
		gwErr := userErrorsToGatewayError("stagedUploadsCreate", payload.StagedUploadsCreate.UserErrors)
		if gwErr == nil {
			gwErr = &GatewayError{Operation: "stagedUploadsCreate", Messages: []string{"no staged target returned"}}
		}
		return nil, gwErr
	}

	return &payload.StagedUploadsCreate.StagedTargets[0], nil
}

// FileCreate registers the transferred binary under the staged resource URL
// and returns the permanent file id.
func (c *Client) FileCreate(ctx context.Context, input FileCreateInput) (string, error) {
	file := map[string]interface{}{
		"originalSource": input.OriginalSource,
		"contentType":    input.ContentType,
	}
	if input.Alt != "" {
		file["alt"] = input.Alt
	}
	vars := map[string]interface{}{
		"files": []map[string]interface{}{file},
	}

	data, err := c.Execute(ctx, fileCreateMutation, vars)
	if err != nil {
		return "", err
	}

	var payload struct {
		FileCreate struct {
			Files []struct {
				ID string `json:"id"`
			} `json:"files"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"fileCreate"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("commerce: decode fileCreate: %w", err)
	}

	if len(payload.FileCreate.Files) == 0 || payload.FileCreate.Files[0].ID == "" {
		gwErr := userErrorsToGatewayError("fileCreate", payload.FileCreate.UserErrors)
		if gwErr == nil {
			gwErr = &GatewayError{Operation: "fileCreate", Messages: []string{"no file returned"}}
		}
		return "", gwErr
	}

	return payload.FileCreate.Files[0].ID, nil
}

// SetMetafield attaches a typed metafield to the owning entity. The
// response's userErrors are inspected; a populated list fails the call even
// when the transport succeeded.
func (c *Client) SetMetafield(ctx context.Context, input MetafieldInput) error {
	vars := map[string]interface{}{
		"metafields": []map[string]interface{}{{
			"ownerId":   input.OwnerID,
			"namespace": input.Namespace,
			"key":       input.Key,
			"type":      input.Type,
			"value":     input.Value,
		}},
	}

	data, err := c.Execute(ctx, metafieldsSetMutation, vars)
	if err != nil {
		return err
	}

	var payload struct {
		MetafieldsSet struct {
			Metafields []struct {
				ID string `json:"id"`
			} `json:"metafields"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"metafieldsSet"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("commerce: decode metafieldsSet: %w", err)
	}

	if gwErr := userErrorsToGatewayError("metafieldsSet", payload.MetafieldsSet.UserErrors); gwErr != nil {
		return gwErr
	}

	return nil
}
