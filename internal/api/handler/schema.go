package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// dataResponse is the envelope used by the remote procedure routes.
type dataResponse struct {
	Data any `json:"data"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// ListQuery binds the common list parameters. It is exported so Echo's binder
// can set it when embedded.
type ListQuery struct {
	Page   int    `query:"page"   validate:"omitempty,min=1"`
	Limit  int    `query:"limit"  validate:"omitempty,min=1,max=100"`
	Search string `query:"search"`
}
