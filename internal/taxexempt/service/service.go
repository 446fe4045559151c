// Package service implements the tax-exempt upload workflow as an explicit
// stage sequence. Each stage depends on the previous stage's output and
// none of the remote side effects can be rolled back, so a failure halts
// the chain immediately and reports the stage it died in.
package service

import (
	"context"
	"path/filepath"
	"strings"

	"wholesale_portal_backend/internal/commerce"
	"wholesale_portal_backend/internal/events"
	"wholesale_portal_backend/platform/apperr"
	"wholesale_portal_backend/platform/logger"
)

// Workflow stages, in execution order. A failure report carries the stage
// name so an operator knows which upstream side effects already landed:
// anything before the failing stage is committed, everything after never ran.
const (
	StageValidating       = "validating"
	StageStaging          = "staging"
	StageTransferring     = "transferring"
	StageCreatingFile     = "creating_file"
	StageLinkingMetafield = "linking_metafield"
	StageNotifying        = "notifying"
)

// Metafield identifiers for the customer/file cross-reference.
const (
	metafieldNamespace = "tax_exempt_forms"
	metafieldKey       = "tax_exempt_form"
	metafieldType      = "file_reference"
)

const customerGIDPrefix = "gid://shopify/Customer/"

// CommerceGateway is the slice of the commerce client this workflow drives.
// Satisfied by *commerce.Client.
type CommerceGateway interface {
	StagedUploadCreate(ctx context.Context, input commerce.StagedUploadInput) (*commerce.StagedUploadTarget, error)
	FileCreate(ctx context.Context, input commerce.FileCreateInput) (string, error)
	SetMetafield(ctx context.Context, input commerce.MetafieldInput) error
}

// Transferer performs the physical POST to a staged target.
// Satisfied by *relay.Relay.
type Transferer interface {
	Transfer(ctx context.Context, target *commerce.StagedUploadTarget, filename, contentType string, fileBytes []byte) error
}

// UploadInput is one inbound tax-exempt document.
type UploadInput struct {
	CustomerID  string
	CompanyName string
	FileName    string
	FileBytes   []byte
}

// UploadResult reports the permanent file reference on success.
type UploadResult struct {
	FileID string
}

// Service orchestrates the upload chain.
type Service struct {
	gateway CommerceGateway
	relay   Transferer
	bus     events.Bus
	log     *logger.Logger
}

// New creates the upload service.
func New(gateway CommerceGateway, relay Transferer, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		gateway: gateway,
		relay:   relay,
		bus:     bus,
		log:     log,
	}
}

// ProcessUpload runs the chain: classify, stage, transfer, create the
// permanent file, link it to the customer, then hand notification off to
// the bus. Any failure before notification aborts the workflow with a typed
// error naming the stage; the notification itself is fire-and-forget.
func (s *Service) ProcessUpload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	log := s.log.WithContext(ctx)

	ext := filepath.Ext(input.FileName)
	mimeType := ClassifyFileType(ext)
	if mimeType == "" {
		return nil, apperr.Validation(AllowedTypesMessage).WithOp(StageValidating)
	}

	uploadName := input.CompanyName + " Tax Exempt Form" + strings.ToLower(ext)
	resource := resourceForMime(mimeType)

	target, err := s.gateway.StagedUploadCreate(ctx, commerce.StagedUploadInput{
		Filename: uploadName,
		MimeType: mimeType,
		Resource: resource,
	})
	if err != nil {
		log.RemoteCallError("commerce", StageStaging, err)
		return nil, apperr.Gateway("failed to stage upload", err).WithOp(StageStaging)
	}

	// The staged target is single-use; a failed transfer is final and the
	// chain must not reach file creation.
	if err := s.relay.Transfer(ctx, target, uploadName, mimeType, input.FileBytes); err != nil {
		log.RemoteCallError("object-storage", StageTransferring, err)
		return nil, apperr.Transport("failed to transfer file", err).WithOp(StageTransferring)
	}

	fileID, err := s.gateway.FileCreate(ctx, commerce.FileCreateInput{
		OriginalSource: target.ResourceURL,
		ContentType:    resource,
		Alt:            uploadName,
	})
	if err != nil {
		log.RemoteCallError("commerce", StageCreatingFile, err)
		return nil, apperr.Gateway("failed to create file record", err).WithOp(StageCreatingFile)
	}

	ownerID := customerGID(input.CustomerID)
	if err := s.gateway.SetMetafield(ctx, commerce.MetafieldInput{
		OwnerID:   ownerID,
		Namespace: metafieldNamespace,
		Key:       metafieldKey,
		Type:      metafieldType,
		Value:     fileID,
	}); err != nil {
		log.RemoteCallError("commerce", StageLinkingMetafield, err)
		return nil, apperr.Gateway("failed to link file to customer", err).WithOp(StageLinkingMetafield)
	}

	s.bus.Publish(ctx, events.TaxExemptFormLinked{
		BaseEvent:   events.NewBaseEvent(),
		CustomerID:  ownerID,
		CompanyName: input.CompanyName,
		FileID:      fileID,
		FileName:    uploadName,
	})

	log.Info("tax exempt form linked", "customerId", ownerID, "fileId", fileID)

	return &UploadResult{FileID: fileID}, nil
}

// resourceForMime decides whether the back office stores the document as an
// image or a generic file.
func resourceForMime(mimeType string) string {
	if strings.HasPrefix(mimeType, "image/") {
		return commerce.ResourceImage
	}
	return commerce.ResourceFile
}

// customerGID widens a bare numeric customer id from the form into the
// back office's global id format. Already-qualified ids pass through.
func customerGID(id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return customerGIDPrefix + id
}
