package constvars

const (
	ResponseUnknown = "unknown"
	HealthStatusOK  = "ok"

	MappingFoundMessage    = "Mapped successfully"
	MappingNotFoundMessage = "No mapping found"
	BundleUploadedMessage  = "Bundle uploaded successfully"
)
