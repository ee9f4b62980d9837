package models

// ProviderRequest is a fully parsed provider call waiting to be sent.
type ProviderRequest struct {
	Operation Operation
	Query     map[string]string
	Body      map[string]any
}
