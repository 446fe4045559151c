// Package transport defines the wire-level request shapes for the
// registration module.
package transport

// RegisterRequest is the inbound self-registration form. The storefront
// posts it url-encoded; API callers may post JSON. Email is the only field
// the workflow insists on — everything else is submitted as-is after
// normalization and left to the back office to accept or reject.
type RegisterRequest struct {
	CompanyName    string `form:"companyName" json:"companyName"`
	FirstName      string `form:"firstName" json:"firstName"`
	LastName       string `form:"lastName" json:"lastName"`
	Email          string `form:"email" json:"email" validate:"required"`
	CompanyWebsite string `form:"companyWebsite" json:"companyWebsite"`
	PhoneNumber    string `form:"phoneNumber" json:"phoneNumber"`
}
