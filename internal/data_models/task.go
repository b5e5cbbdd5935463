package dto

type CreateTaskRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Priority    *string  `json:"priority"`
	StartDate   *string  `json:"startDate"`
	DueDate     *string  `json:"dueDate"`
	TagIDs      []string `json:"tagIds"`
}

type UpdateTaskRequest struct {
	Title       Optional[string]   `json:"title"`
	Description Optional[string]   `json:"description"`
	Status      Optional[string]   `json:"status"`
	Priority    Optional[string]   `json:"priority"`
	StartDate   Optional[string]   `json:"startDate"`
	DueDate     Optional[string]   `json:"dueDate"`
	TagIDs      Optional[[]string] `json:"tagIds"`
}

type CreateTagRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}
