package rbac

import "go-hrdesk/internal/domain"

// Resources guarded by RBACAuthorize.
const (
	ResourceCandidate  = "candidate"
	ResourceInterview  = "interview"
	ResourceOffer      = "offer"
	ResourceEmployee   = "employee"
	ResourceAttendance = "attendance"
	ResourcePayroll    = "payroll"
	ResourceExit       = "exit"
	ResourceAsset      = "asset"
	ResourceApproval   = "approval"
	ResourceDocument   = "document"
	ResourceReport     = "report"
	ResourceRole       = "role"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpload = "upload"
	ActionExport = "export"
)

var formResources = []string{
	ResourceCandidate,
	ResourceInterview,
	ResourceOffer,
	ResourceEmployee,
	ResourceAttendance,
	ResourcePayroll,
	ResourceExit,
	ResourceAsset,
	ResourceApproval,
}

type RoleInheritanceRow struct {
	Role   string
	Parent string
}

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRoleInheritance() ([]RoleInheritanceRow, error)
	GetRolePermissions() ([]RolePermissionRow, error)
}

type staticRepository struct{}

// NewStaticRepository serves the fixed VIEWER < HR < ADMIN policy.
func NewStaticRepository() Repository {
	return staticRepository{}
}

func (staticRepository) GetRoleInheritance() ([]RoleInheritanceRow, error) {
	return []RoleInheritanceRow{
		{Role: domain.RoleHR, Parent: domain.RoleViewer},
		{Role: domain.RoleAdmin, Parent: domain.RoleHR},
	}, nil
}

func (staticRepository) GetRolePermissions() ([]RolePermissionRow, error) {
	var rows []RolePermissionRow

	for _, res := range append(formResources, ResourceDocument, ResourceReport) {
		rows = append(rows, RolePermissionRow{Role: domain.RoleViewer, Resource: res, Action: ActionRead})
	}

	for _, res := range formResources {
		rows = append(rows, RolePermissionRow{Role: domain.RoleHR, Resource: res, Action: ActionCreate})
	}
	rows = append(rows,
		RolePermissionRow{Role: domain.RoleHR, Resource: ResourceDocument, Action: ActionUpload},
		RolePermissionRow{Role: domain.RoleHR, Resource: ResourceReport, Action: ActionExport},
		RolePermissionRow{Role: domain.RoleAdmin, Resource: ResourceRole, Action: ActionRead},
	)

	return rows, nil
}
