package veogo

// OperationStatus represents the state of a video generation operation
type OperationStatus string

const (
	OperationStatusPending OperationStatus = "pending"
	OperationStatusDone    OperationStatus = "done"
	OperationStatusError   OperationStatus = "error"
)

// GenerateVideoRequest represents a video generation request
type GenerateVideoRequest struct {
	Prompt string `json:"prompt"`
	// Image is optional base64-encoded image data for image-to-video
	Image string `json:"image,omitempty"`
}

// GenerateVideoResponse represents the response from starting a generation
type GenerateVideoResponse struct {
	OperationName string `json:"operationName"`
}

// GetOperationStatusRequest asks for the status of a generation operation
type GetOperationStatusRequest struct {
	OperationName string `json:"operationName"`
}

// GetOperationStatusResponse represents the status of a generation operation
type GetOperationStatusResponse struct {
	Name   string          `json:"name"`
	Done   bool            `json:"done"`
	Videos []Video         `json:"videos,omitempty"`
	Error  *OperationError `json:"error,omitempty"`
}

// Video is the location of a generated video
type Video struct {
	URI       string `json:"uri"`
	Encoding  string `json:"encoding,omitempty"`
	SignedURI string `json:"signedUri,omitempty"`
}

// OperationError describes why an operation failed
type OperationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Status derives the operation state from the response fields
func (r *GetOperationStatusResponse) Status() OperationStatus {
	switch {
	case r == nil || !r.Done:
		return OperationStatusPending
	case r.Error != nil:
		return OperationStatusError
	default:
		return OperationStatusDone
	}
}
