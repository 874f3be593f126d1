package reviewer

import "reviewboard/internal/domain"

type CreateReviewerRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
}

func (r CreateReviewerRequest) toDomain() domain.ReviewerCreate {
	return domain.ReviewerCreate{
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
	}
}

type UpdateReviewerRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}

func (r UpdateReviewerRequest) toDomain() domain.ReviewerUpdate {
	return domain.ReviewerUpdate{
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
	}
}
