package apierr

import "net/http"

// --- Common ---

func InvalidRequestBody() *Error {
	return New(CodeInvalidRequestBody, http.StatusBadRequest, "Invalid request body")
}

func InternalError(cause error) *Error {
	return Wrap(CodeInternalError, http.StatusInternalServerError, "Internal server error", cause)
}

func NotImplemented(feature string) *Error {
	return New(CodeNotImplemented, http.StatusNotImplemented, feature+" is not implemented yet")
}

// --- Invalid input (400) ---

func InvalidCoordinates(field string) *Error {
	return New(CodeInvalidCoordinates, http.StatusBadRequest, field+" coordinates must lie in [0,1]")
}

func InvalidBoundingBox(field string) *Error {
	return New(CodeInvalidBoundingBox, http.StatusBadRequest, field+" bounding box is degenerate or unordered")
}

func MissingField(field string) *Error {
	return New(CodeMissingField, http.StatusBadRequest, field+" is required")
}

// --- Artifact readiness (422) ---

func ArtifactNotReady(pidName string) *Error {
	return New(CodeArtifactNotReady, http.StatusUnprocessableEntity, "no completed artifact exists yet for pid "+pidName)
}

// --- Job conflict (409) ---

func JobAlreadyRunning(pidName string) *Error {
	return New(CodeJobAlreadyRunning, http.StatusConflict, "a graph-construction job is already running for pid "+pidName)
}

// --- Dependency failure (502) ---

func DependencyFailure(dependency string, cause error) *Error {
	return Wrap(CodeDependencyFailure, http.StatusBadGateway, dependency+" is unavailable", cause)
}

// --- Not found ---

func PIDNotFound(pidName string) *Error {
	return New(CodePIDNotFound, http.StatusNotFound, "pid "+pidName+" not found")
}

func JobNotFound(jobID string) *Error {
	return New(CodeJobNotFound, http.StatusNotFound, "job "+jobID+" not found")
}

// --- Health ---

func DatabaseNotReady() *Error {
	return New(CodeDatabaseNotReady, http.StatusServiceUnavailable, "Database not ready")
}
