package minio

import "time"

const (
	// HTTP transport for MinIO client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
	disableKeepAlives   = false
)

const (
	// MaxFileSizeBytes is the maximum upload size. Artifacts and questionnaires are small.
	MaxFileSizeBytes = 64 * 1024 * 1024
	// DefaultEndpointPort is appended to endpoint if no port.
	DefaultEndpointPort = ":9000"
	// ContentTypeJSON is used for every object this service stores.
	ContentTypeJSON = "application/json"
)
