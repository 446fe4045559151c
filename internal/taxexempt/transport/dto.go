// Package transport defines the wire-level types for the tax-exempt module.
package transport

// UploadForm carries the non-file fields of the multipart upload post. The
// field names match the storefront form exactly.
type UploadForm struct {
	CustomerID  string `form:"customerId" validate:"required"`
	CompanyName string `form:"customerCompany" validate:"required"`
}
