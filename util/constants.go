package util

const (
	DOCTOR_NOT_FOUND        = "Doctor not found"
	PATIENT_NOT_FOUND       = "Patient not found"
	CONSULTATION_NOT_FOUND  = "Consultation not found"
	PRESCRIPTION_NOT_FOUND  = "Prescription not found"
	NO_DOCTORS_FOUND        = "No doctors found"
	NO_CONSULTATIONS_FOUND  = "No consultations found"
	NO_PRESCRIPTIONS_FOUND  = "No prescriptions found for this patient"
	DOCTOR_ALREADY_EXISTS   = "Doctor already exists"
	PATIENT_ALREADY_EXISTS  = "Patient already exists"
	INVALID_CREDENTIALS     = "Invalid Email or Password"
	OLD_PASSWORD_INCORRECT  = "Old password is incorrect"
	PASSWORD_REQUIRED       = "Password is required"
	TRANSACTION_ID_REQUIRED = "Transaction ID is required"
	PDF_REQUIRED            = "A prescription PDF could not be produced or supplied"
	NO_TOKEN_PROVIDED       = "No token provided, authorization denied."
	TOKEN_NOT_VALID         = "Token is not valid."
	ONLY_IMAGES_ALLOWED     = "Only image files are allowed"
	FILE_TOO_LARGE          = "File exceeds the maximum allowed size"
	SOMETHING_WENT_WRONG    = "Something went wrong"
)
