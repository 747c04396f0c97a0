package http

import "errors"

// ErrNoCaptureService is returned by [NewHandler] when the services bundle
// does not carry a capture service for GET /.
var ErrNoCaptureService = errors.New("capture service is not provided")
