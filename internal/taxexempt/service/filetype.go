package service

import "strings"

// allowedTypes maps accepted file extensions to their MIME type. The
// allow-list is deliberately closed: staff review these documents by hand
// and only these formats render in the back office.
var allowedTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".pdf":  "application/pdf",
}

// ClassifyFileType maps a filename extension to its MIME type,
// case-insensitively. An empty result means the extension is outside the
// allow-list and the upload must be rejected before any remote call.
func ClassifyFileType(ext string) string {
	return allowedTypes[strings.ToLower(ext)]
}

// AllowedTypesMessage is the user-facing rejection text for uploads outside
// the allow-list.
const AllowedTypesMessage = "Invalid file type. Please upload a PNG, JPG or PDF file."
