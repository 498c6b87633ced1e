package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrNotFound               = errors.New("document not found")
	ErrMissingID              = errors.New("document has no _id")
	ErrWrongModel             = errors.New("document belongs to another model")
	ErrWriteFailed            = errors.New("failed to write document")
)
