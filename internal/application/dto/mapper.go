package dto

import (
	"time"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// NewLeadResponse convierte la entidad en su DTO de salida.
func NewLeadResponse(l *entity.Lead) *LeadResponse {
	if l == nil {
		return nil
	}
	history := make([]StatusChangeResponse, 0, len(l.StatusHistory))
	for _, c := range l.StatusHistory {
		history = append(history, StatusChangeResponse{
			ID:         c.ID,
			FromStatus: string(c.FromStatus),
			ToStatus:   string(c.ToStatus),
			ChangedBy:  c.ChangedBy,
			ChangedAt:  c.ChangedAt,
			Notes:      c.Notes,
		})
	}
	return &LeadResponse{
		ID:            l.ID,
		Name:          l.Name,
		Company:       l.Company,
		Email:         l.Email,
		Phone:         l.Phone,
		Status:        string(l.Status),
		Priority:      l.Priority,
		Requirements:  l.Requirements,
		Notes:         l.Notes,
		OwnerID:       l.OwnerID,
		OwnerName:     l.OwnerName,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
		FollowUpDate:  l.FollowUpDate,
		StatusHistory: history,
	}
}

// NewProjectResponse convierte la entidad en su DTO de salida.
func NewProjectResponse(p *entity.Project) *ProjectResponse {
	if p == nil {
		return nil
	}
	return &ProjectResponse{
		ID:                  p.ID,
		LeadID:              p.LeadID,
		OwnerID:             p.OwnerID,
		Name:                p.Name,
		Description:         p.Description,
		Status:              string(p.Status),
		AssignedManagerID:   p.AssignedManagerID,
		AssignedManagerName: p.AssignedManagerName,
		EstimatedValue:      p.EstimatedValue,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// NewFollowUpResponse convierte la entidad; Overdue se calcula contra now.
func NewFollowUpResponse(f *entity.FollowUp, now time.Time) *FollowUpResponse {
	if f == nil {
		return nil
	}
	return &FollowUpResponse{
		ID:            f.ID,
		LeadID:        f.LeadID,
		LeadName:      f.LeadName,
		Company:       f.Company,
		OwnerID:       f.OwnerID,
		ScheduledDate: f.ScheduledDate,
		Notes:         f.Notes,
		Completed:     f.Completed,
		CompletedAt:   f.CompletedAt,
		Overdue:       f.Overdue(now),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// NewUserResponse convierte la entidad (sin hash).
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Avatar: u.Avatar}
}
