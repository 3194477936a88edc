package dto

// ListDocumentsParams defines query parameters for token-paginated document listings.
type ListDocumentsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// TransitionRequest carries the reason for a reject or cancel transition.
type TransitionRequest struct {
	Reason string `json:"reason" binding:"required"`
}
