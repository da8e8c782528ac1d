package constvars

// Endpoint paths of the NAMASTE terminology API, relative to the configured base URL.
const (
	EndpointTranslate          = "/translate"
	EndpointTerminologySearch  = "/terminology/search"
	EndpointBundleUpload       = "/bundle/upload"
	EndpointBundle             = "/bundle"
	EndpointPatient            = "/patient"
	EndpointDiagnoses          = "/diagnoses"
	EndpointHealth             = "/health"
	QueryParamCode             = "code"
	QueryParamQuery            = "query"
	URLParamID                 = "id"
	ResourceMapping            = "MappingResult"
	ResourceBundle             = "Bundle"
	ResourceUploadResponse     = "UploadResponse"
	ResourceDiagnosis          = "Diagnosis"
	ResourceTerminologyResult  = "TerminologyResult"
	ResourcePatient            = "Patient"
	TargetCodeUnknown          = "UNKNOWN"
	EquivalenceEquivalent      = "equivalent"
	EquivalenceUnmatched       = "unmatched"
	RedisTokenCacheKeyPrefix   = "namaste:token:"
	RedisTokenRefreshLockKey   = "namaste:token-refresh-lock:"
	AuditEventTransportRequest = "transport.request"
)
