package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses; kept here for the swagger annotations, rendering happens in the
// central error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// taskRequest carries the mutable fields of a task for create and update.
type taskRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=3,max=100"`
	Priority    int    `json:"priority"    validate:"required,gte=1,lte=3"`
	Completed   bool   `json:"completed"`
}

type taskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Completed   bool   `json:"completed"`
	OwnerID     int64  `json:"owner_id"`
}
