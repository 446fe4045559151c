package email

const (
	subjectActivation            = "Activate your wholesale account"
	subjectRegistrationNoticeFmt = "New wholesale registration: %s"
	subjectTaxFormNoticeFmt      = "Tax exempt form uploaded for %s"
)
