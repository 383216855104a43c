package i18n

// Key identifies a catalogue entry. Only the constants below are valid keys.
type Key string

const (
	KeyStatusNew         Key = "status.new"
	KeyStatusInProgress  Key = "status.in_progress"
	KeyStatusPreviewSent Key = "status.preview_sent"
	KeyStatusPaid        Key = "status.paid"
	KeyStatusCompleted   Key = "status.completed"

	KeyProjectFormNotSubmitted Key = "project.form_not_submitted"
	KeyProjectInProgress       Key = "project.in_progress"
	KeyProjectPreviewAvailable Key = "project.preview_available"
	KeyProjectApprovalPending  Key = "project.approval_pending"
	KeyProjectPaymentComplete  Key = "project.payment_complete"

	KeyStepForm     Key = "step.form"
	KeyStepBuild    Key = "step.build"
	KeyStepPreview  Key = "step.preview"
	KeyStepApproval Key = "step.approval"
	KeyStepPayment  Key = "step.payment"

	KeyTimeExpired       Key = "time.expired"
	KeyTimeHoursLeft     Key = "time.hours_left"
	KeyTimeDaysHoursLeft Key = "time.days_hours_left"
	KeyCountdown         Key = "dashboard.countdown"

	KeyStatusUpdated     Key = "admin.status_updated"
	KeyPreviewSaved      Key = "admin.preview_saved"
	KeyRoleUpdated       Key = "admin.role_updated"
	KeyInquiryUpdated    Key = "admin.inquiry_updated"
	KeySignedOut         Key = "auth.signed_out"
	KeyProfileUpdated    Key = "profile.updated"
	KeySubmitted         Key = "questionnaire.submitted"
	KeyAttachmentRemoved Key = "questionnaire.attachment_removed"
	KeyPreviewApproved   Key = "dashboard.preview_approved"
	KeyPaymentConfirmed  Key = "payment.confirmed"
	KeyContactReceived   Key = "contact.received"
	KeyDomainFeeNotice   Key = "questionnaire.domain_fee"

	KeyValidationRequired       Key = "validation.required"
	KeyValidationMinLength      Key = "validation.min_length"
	KeyValidationEmail          Key = "validation.email"
	KeyValidationOneOf          Key = "validation.oneof"
	KeyValidationURL            Key = "validation.url"
	KeyValidationDomainRequired Key = "validation.domain_required"
	KeyValidationInvalid        Key = "validation.invalid"

	KeyErrGeneric             Key = "error.generic"
	KeyErrNotFound            Key = "error.not_found"
	KeyErrUnauthorized        Key = "error.unauthorized"
	KeyErrForbidden           Key = "error.forbidden"
	KeyErrInvalidCredentials  Key = "error.invalid_credentials"
	KeyErrEmailTaken          Key = "error.email_taken"
	KeyErrSubmissionInFlight  Key = "error.submission_in_flight"
	KeyErrActiveRequestExists Key = "error.active_request_exists"
	KeyErrPaymentNotAllowed   Key = "error.payment_not_allowed"
	KeyErrPaymentInFlight     Key = "error.payment_in_flight"
	KeyErrApprovalNotAllowed  Key = "error.approval_not_allowed"
	KeyErrRateLimited         Key = "error.rate_limited"
	KeyErrValidation          Key = "error.validation"
	KeyErrBadRequest          Key = "error.bad_request"
	KeyErrUnavailable         Key = "error.unavailable"

	KeyPackageBasicTitle    Key = "package.basic.title"
	KeyPackageBasicDesc     Key = "package.basic.description"
	KeyPackageStandardTitle Key = "package.standard.title"
	KeyPackageStandardDesc  Key = "package.standard.description"
	KeyPackagePremiumTitle  Key = "package.premium.title"
	KeyPackagePremiumDesc   Key = "package.premium.description"
	KeyPaymentMethodStripe  Key = "payment.method.stripe"
	KeyPaymentMethodOrange  Key = "payment.method.orange"
	KeyPaymentMethodWave    Key = "payment.method.wave"
)

// AllKeys lists the closed key set, used to detect missing translations.
var AllKeys = []Key{
	KeyStatusNew, KeyStatusInProgress, KeyStatusPreviewSent, KeyStatusPaid, KeyStatusCompleted,
	KeyProjectFormNotSubmitted, KeyProjectInProgress, KeyProjectPreviewAvailable, KeyProjectApprovalPending, KeyProjectPaymentComplete,
	KeyStepForm, KeyStepBuild, KeyStepPreview, KeyStepApproval, KeyStepPayment,
	KeyTimeExpired, KeyTimeHoursLeft, KeyTimeDaysHoursLeft, KeyCountdown,
	KeyStatusUpdated, KeyPreviewSaved, KeyRoleUpdated, KeyInquiryUpdated, KeySignedOut, KeyProfileUpdated,
	KeySubmitted, KeyAttachmentRemoved, KeyPreviewApproved, KeyPaymentConfirmed, KeyContactReceived, KeyDomainFeeNotice,
	KeyValidationRequired, KeyValidationMinLength, KeyValidationEmail, KeyValidationOneOf, KeyValidationURL,
	KeyValidationDomainRequired, KeyValidationInvalid,
	KeyErrGeneric, KeyErrNotFound, KeyErrUnauthorized, KeyErrForbidden, KeyErrInvalidCredentials, KeyErrEmailTaken,
	KeyErrSubmissionInFlight, KeyErrActiveRequestExists, KeyErrPaymentNotAllowed, KeyErrPaymentInFlight, KeyErrApprovalNotAllowed, KeyErrRateLimited,
	KeyErrValidation, KeyErrBadRequest, KeyErrUnavailable,
	KeyPackageBasicTitle, KeyPackageBasicDesc, KeyPackageStandardTitle, KeyPackageStandardDesc,
	KeyPackagePremiumTitle, KeyPackagePremiumDesc,
	KeyPaymentMethodStripe, KeyPaymentMethodOrange, KeyPaymentMethodWave,
}
