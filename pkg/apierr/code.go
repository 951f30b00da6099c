package apierr

// Code is a machine-readable error code returned in API responses.
type Code string

// Common errors.
const (
	CodeInvalidRequestBody Code = "INVALID_REQUEST_BODY"
	CodeInternalError      Code = "INTERNAL_ERROR"
	CodeNotImplemented     Code = "NOT_IMPLEMENTED"
)

// Invalid-input errors (400).
const (
	CodeInvalidCoordinates Code = "INVALID_COORDINATES"
	CodeInvalidBoundingBox Code = "INVALID_BOUNDING_BOX"
	CodeMissingField       Code = "MISSING_FIELD"
)

// Artifact-readiness errors (422).
const (
	CodeArtifactNotReady Code = "ARTIFACT_NOT_READY"
)

// Job-conflict errors (409).
const (
	CodeJobAlreadyRunning Code = "JOB_ALREADY_RUNNING"
)

// Upstream-dependency errors (502).
const (
	CodeDependencyFailure Code = "DEPENDENCY_FAILURE"
)

// Not-found errors.
const (
	CodePIDNotFound Code = "PID_NOT_FOUND"
	CodeJobNotFound Code = "JOB_NOT_FOUND"
)

// Health errors.
const (
	CodeDatabaseNotReady Code = "DATABASE_NOT_READY"
)
