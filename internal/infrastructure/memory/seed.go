package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// Usuarios del directorio demo.
const (
	DemoAdminID    = "1"
	DemoAdminEmail = "admin@crm.com"
	DemoSalesID    = "2"
	DemoSalesEmail = "sales@crm.com"
)

// SeedUsers carga los dos usuarios demo con el hash de contraseña dado.
// Reemplaza los usuarios existentes.
func SeedUsers(s *Store, passwordHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users = []*entity.User{
		{ID: DemoAdminID, Name: "Admin User", Email: DemoAdminEmail, PasswordHash: passwordHash, Role: entity.RoleAdmin},
		{ID: DemoSalesID, Name: "Sales Representative", Email: DemoSalesEmail, PasswordHash: passwordHash, Role: entity.RoleSales},
	}
}

// SeedDemoData carga el conjunto de datos de ejemplo: cinco leads, un proyecto y
// cuatro seguimientos pendientes. Lead.FollowUpDate coincide con el seguimiento
// pendiente de cada lead. Reemplaza leads, seguimientos y proyectos existentes.
func SeedDemoData(s *Store) {
	const (
		salesName = "Sales Representative"
		adminName = "Admin User"
	)
	leads := []*entity.Lead{
		{
			ID: "1", Name: "Michael Johnson", Company: "SwiftTech Solutions",
			Email: "michael@swifttech.com", Phone: "+1 (555) 123-4567",
			Status: entity.LeadStatusApproved, Priority: 8,
			Requirements: "Custom CRM software for managing 500+ clients",
			OwnerID:      DemoSalesID, OwnerName: salesName,
			CreatedAt: ts("2024-01-05T11:20:00Z"), UpdatedAt: ts("2024-01-07T14:30:00Z"),
			FollowUpDate: tsp("2024-01-15T10:00:00Z"),
			StatusHistory: []entity.StatusChange{{
				ID: "1", FromStatus: entity.LeadStatusPending, ToStatus: entity.LeadStatusApproved,
				ChangedBy: adminName, ChangedAt: ts("2024-01-07T14:30:00Z"),
				Notes: "High-value client, good fit for our services",
			}},
		},
		{
			ID: "2", Name: "Emma Davis", Company: "BlueWave Group",
			Email: "emma@bluewave.com", Phone: "+1 (555) 234-5678",
			Status: entity.LeadStatusPending, Priority: 6,
			Requirements: "E-commerce platform development",
			OwnerID:      DemoSalesID, OwnerName: salesName,
			CreatedAt: ts("2024-01-10T09:45:00Z"), UpdatedAt: ts("2024-01-10T09:45:00Z"),
			FollowUpDate: tsp("2024-01-18T14:00:00Z"),
		},
		{
			ID: "3", Name: "Ethan Wilson", Company: "Summit Inc",
			Email: "ethan@summit.com", Phone: "+1 (555) 345-6789",
			Status: entity.LeadStatusRejected, Priority: 3,
			Requirements: "Simple website redesign",
			OwnerID:      DemoSalesID, OwnerName: salesName,
			CreatedAt: ts("2024-01-15T14:30:00Z"), UpdatedAt: ts("2024-01-16T10:15:00Z"),
			StatusHistory: []entity.StatusChange{{
				ID: "2", FromStatus: entity.LeadStatusPending, ToStatus: entity.LeadStatusRejected,
				ChangedBy: adminName, ChangedAt: ts("2024-01-16T10:15:00Z"),
				Notes: "Budget too low for our services",
			}},
		},
		{
			ID: "4", Name: "Olivia Parker", Company: "Nexus Corporation",
			Email: "olivia@nexus.com", Phone: "+1 (555) 456-7890",
			Status: entity.LeadStatusContacted, Priority: 9,
			Requirements: "Enterprise software solution",
			OwnerID:      DemoSalesID, OwnerName: salesName,
			CreatedAt: ts("2024-01-20T16:00:00Z"), UpdatedAt: ts("2024-01-22T11:30:00Z"),
			FollowUpDate: tsp("2024-01-25T15:00:00Z"),
			StatusHistory: []entity.StatusChange{{
				ID: "3", FromStatus: entity.LeadStatusPending, ToStatus: entity.LeadStatusContacted,
				ChangedBy: salesName, ChangedAt: ts("2024-01-22T11:30:00Z"),
				Notes: "Initial contact made, waiting for response",
			}},
		},
		{
			ID: "5", Name: "Sophia Adams", Company: "Stellar Ltd",
			Email: "sophia@stellar.com", Phone: "+1 (555) 567-8901",
			Status: entity.LeadStatusPending, Priority: 7,
			Requirements: "Mobile app development",
			OwnerID:      DemoSalesID, OwnerName: salesName,
			CreatedAt: ts("2024-01-25T09:00:00Z"), UpdatedAt: ts("2024-01-25T09:00:00Z"),
			FollowUpDate: tsp("2024-02-01T10:00:00Z"),
		},
	}

	followUps := []*entity.FollowUp{
		demoFollowUp("1", leads[0], "2024-01-15T10:00:00Z", "Discuss project timeline and requirements"),
		demoFollowUp("2", leads[1], "2024-01-18T14:00:00Z", "Follow up on proposal sent"),
		demoFollowUp("3", leads[3], "2024-01-25T15:00:00Z", "Schedule technical discussion"),
		demoFollowUp("4", leads[4], "2024-02-01T10:00:00Z", "Present mobile app proposal"),
	}

	projects := []*entity.Project{{
		ID: "1", LeadID: "1", OwnerID: DemoSalesID,
		Name:                "SwiftTech CRM Development",
		Description:         "Custom CRM software for managing 500+ clients",
		Status:              entity.ProjectStatusInProgress,
		AssignedManagerID:   "pm1",
		AssignedManagerName: "Sarah Mitchell",
		EstimatedValue:      decimal.NewFromInt(150000),
		CreatedAt:           ts("2024-01-08T10:00:00Z"),
		UpdatedAt:           ts("2024-01-08T10:00:00Z"),
	}}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.leads = leads
	s.data.followUps = followUps
	s.data.projects = projects
}

func demoFollowUp(id string, l *entity.Lead, scheduled, notes string) *entity.FollowUp {
	return &entity.FollowUp{
		ID: id, LeadID: l.ID, LeadName: l.Name, Company: l.Company, OwnerID: l.OwnerID,
		ScheduledDate: ts(scheduled), Notes: notes,
		CreatedAt: l.CreatedAt, UpdatedAt: l.CreatedAt,
	}
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}
