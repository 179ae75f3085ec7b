package domain

type CtxKey string

const (
	KeyAdminSubject CtxKey = "AdminSubject"
	KeyRequestID    CtxKey = "RequestID"
)
